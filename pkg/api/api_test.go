package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
)

type runResponse struct {
	Result json.RawMessage `json:"result"`
	Output string          `json:"output"`
	Error  *struct {
		Stage   string `json:"stage"`
		Message string `json:"message"`
	} `json:"error"`
}

func postRun(t *testing.T, body string) (int, runResponse) {
	t.Helper()
	srv := New()
	req := httptest.NewRequest("POST", "/run", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var parsed runResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid response %q: %v", data, err)
	}
	return resp.StatusCode, parsed
}

func TestRunEndpointSuccess(t *testing.T) {
	status, resp := postRun(t, `{"source": "i = 0; while i < 3 { print i; i = i + 1; } i;"}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Output != "0\n1\n2\n" {
		t.Errorf("output = %q, want %q", resp.Output, "0\n1\n2\n")
	}
	if string(resp.Result) != "3" {
		t.Errorf("result = %s, want 3", resp.Result)
	}
}

func TestRunEndpointErrorStages(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stage  string
	}{
		{"lex", `print "oops;`, "lex"},
		{"parse", "print 1", "parse"},
		{"eval", "1 / 0;", "eval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"source": tt.source})
			status, resp := postRun(t, string(body))
			if status != 422 {
				t.Fatalf("status = %d, want 422", status)
			}
			if resp.Error == nil {
				t.Fatal("missing error object")
			}
			if resp.Error.Stage != tt.stage {
				t.Errorf("stage = %q, want %q", resp.Error.Stage, tt.stage)
			}
		})
	}
}

func TestRunEndpointKeepsOutputBeforeFailure(t *testing.T) {
	status, resp := postRun(t, `{"source": "print 1; print 1 / 0;"}`)
	if status != 422 {
		t.Fatalf("status = %d, want 422", status)
	}
	if resp.Output != "1\n" {
		t.Errorf("output = %q, want %q", resp.Output, "1\n")
	}
}

func TestRunEndpointBadRequests(t *testing.T) {
	for _, body := range []string{"not json", `{"source": ""}`, `{}`} {
		status, resp := postRun(t, body)
		if status != 400 {
			t.Errorf("body %q: status = %d, want 400", body, status)
		}
		if resp.Error == nil || resp.Error.Stage != "request" {
			t.Errorf("body %q: got %+v, want a request-stage error", body, resp.Error)
		}
	}
}

func TestRequestsAreIsolated(t *testing.T) {
	srv := New()
	post := func(source string) runResponse {
		body, _ := json.Marshal(map[string]string{"source": source})
		req := httptest.NewRequest("POST", "/run", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := srv.App().Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		var parsed runResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("invalid response %q: %v", data, err)
		}
		return parsed
	}

	post("x = 1;")
	resp := post("print x;")
	if resp.Error == nil {
		t.Fatal("second request should not see the first request's variables")
	}
	if resp.Error.Stage != "eval" {
		t.Errorf("stage = %q, want eval", resp.Error.Stage)
	}
}
