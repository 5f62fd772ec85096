package e2e

import (
	"net/http"
	"net/http/httptest"
	"time"

	"rsc.io/script"
	"rsc.io/script/scripttest"
)

// CmdStartStubEndpoint serves the sync API surface the CLI talks to. The
// URL is exported as SYNC_URL for the rest of the script.
func CmdStartStubEndpoint() script.Cmd {
	return script.Command(
		script.CmdUsage{
			Summary: "start a stub sync endpoint in background, its URL will be available as environment variable SYNC_URL",
			Args:    "[token]",
		},
		func(s *script.State, args ...string) (script.WaitFunc, error) {
			if len(args) > 1 {
				return nil, script.ErrUsage
			}
			token := "test-token"
			if len(args) == 1 {
				token = args[0]
			}

			mux := http.NewServeMux()
			mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if r.Header.Get("Authorization") != "Bearer "+token {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"error":"invalid token"}`))
					return
				}
				_, _ = w.Write([]byte(`{"status":"ok","version":"stub"}`))
			})
			srv := httptest.NewServer(mux)
			s.Setenv("SYNC_URL", srv.URL)

			wait := func(*script.State) (stdout, stderr string, err error) {
				// Keep the stub running in the background until the script ends
				go func() {
					<-s.Context().Done()
					srv.Close()
				}()
				return "", "", nil
			}
			return wait, nil
		})
}

func Commands() map[string]script.Cmd {
	commands := scripttest.DefaultCmds()
	commands["start_stub_endpoint"] = CmdStartStubEndpoint()
	commands["mcpsync"] = script.Program(MCPSYNC_BINARY_PATH, nil, 100*time.Millisecond) // Shortcut of exec $MCPSYNC_BIN
	return commands
}
