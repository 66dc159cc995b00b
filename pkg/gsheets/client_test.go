package gsheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trello-sheets-sync/pkg/gsheets"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gsheets.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gsheets.NewClientFromHTTP(context.Background(), tsClient, gsheets.Config{SpreadsheetID: "sid"})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`
	cfg := gsheets.Config{SpreadsheetID: "sid", TokenPath: filepath.Join(t.TempDir(), "token.json")}

	t.Run("Missing spreadsheet id", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), gsheets.Config{})
		if err != gsheets.ErrMissingSpreadsheetID {
			t.Errorf("expected ErrMissingSpreadsheetID, got %v", err)
		}
	})

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), cfg)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), cfg)
		if err == nil {
			t.Errorf("expected missing token failure")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		os.WriteFile(cfg.TokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0600)
		defer os.Remove(cfg.TokenPath)

		if _, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), cfg); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		os.WriteFile(cfg.TokenPath, []byte(`{"broken": true`), 0600)
		defer os.Remove(cfg.TokenPath)

		if _, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), cfg); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("From file", func(t *testing.T) {
		if _, err := gsheets.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", cfg); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestClientCalls(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		calls = append(calls, call{method: r.Method, path: r.URL.Path, body: string(raw)})

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v4/spreadsheets/sid":
			w.Write([]byte(`{"sheets":[{"properties":{"sheetId":0,"title":"Trello","index":0}},{"properties":{"sheetId":7,"title":"Proj","index":1}}]}`))
		case r.URL.Path == "/v4/spreadsheets/sid:batchUpdate":
			if strings.Contains(string(raw), "addSheet") {
				w.Write([]byte(`{"replies":[{"addSheet":{"properties":{"sheetId":42,"title":"New"}}}]}`))
				return
			}
			if strings.Contains(string(raw), "deleteSheet") && strings.Contains(string(raw), `"sheetId":99`) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"code":400,"message":"No sheet with id: 99"}}`))
				return
			}
			w.Write([]byte(`{"replies":[{}]}`))
		default:
			w.Write([]byte(`{}`))
		}
	})
	ctx := context.Background()

	t.Run("Sheets", func(t *testing.T) {
		infos, err := client.Sheets(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(infos) != 2 || infos[1].ID != 7 || infos[1].Title != "Proj" {
			t.Errorf("unexpected sheets %+v", infos)
		}
	})

	t.Run("AddSheet", func(t *testing.T) {
		id, err := client.AddSheet(ctx, "New")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 42 {
			t.Errorf("expected sheet id 42, got %d", id)
		}
	})

	t.Run("DeleteSheet error", func(t *testing.T) {
		if err := client.DeleteSheet(ctx, 99); err == nil {
			t.Errorf("expected api error")
		}
	})

	t.Run("Values", func(t *testing.T) {
		calls = nil
		if err := client.ClearValues(ctx, "Trello"); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if err := client.UpdateValues(ctx, gsheets.A1("Trello", 1, 1), [][]any{{"Board", "List"}}); err != nil {
			t.Fatalf("update: %v", err)
		}
		if err := client.AppendValues(ctx, gsheets.A1("Trello", 1, 1), [][]any{{"Proj", false}}); err != nil {
			t.Fatalf("append: %v", err)
		}
		if len(calls) != 3 {
			t.Fatalf("expected 3 calls, got %d", len(calls))
		}
		if !strings.HasSuffix(calls[0].path, ":clear") || calls[1].method != http.MethodPut || !strings.HasSuffix(calls[2].path, ":append") {
			t.Errorf("unexpected calls %+v", calls)
		}
		var vr struct {
			Values [][]any `json:"values"`
		}
		json.Unmarshal([]byte(calls[2].body), &vr)
		if len(vr.Values) != 1 || vr.Values[0][1] != false {
			t.Errorf("unexpected appended body %s", calls[2].body)
		}
	})

	t.Run("Format, merge, widths and notes", func(t *testing.T) {
		calls = nil
		rng := gsheets.GridRange{SheetID: 7, StartRow: 1, EndRow: 2, StartColumn: 0, EndColumn: 4}
		if err := client.Format(ctx, rng, gsheets.CellFormat{Foreground: "black", Background: "#c9daf8", FontSize: 14, Wrap: true}); err != nil {
			t.Fatalf("format: %v", err)
		}
		if err := client.Format(ctx, rng, gsheets.CellFormat{}); err != nil {
			t.Fatalf("empty format: %v", err)
		}
		if err := client.Merge(ctx, rng); err != nil {
			t.Fatalf("merge: %v", err)
		}
		if err := client.SetColumnWidths(ctx, 7, 0, []int64{150, 150}); err != nil {
			t.Fatalf("widths: %v", err)
		}
		if err := client.SetNote(ctx, rng, "http://x/s.png"); err != nil {
			t.Fatalf("note: %v", err)
		}
		if len(calls) != 4 {
			t.Fatalf("empty format must not call the API, got %d calls", len(calls))
		}
		if !strings.Contains(calls[0].body, "userEnteredFormat(textFormat.foregroundColor,textFormat.fontSize,backgroundColor,wrapStrategy)") {
			t.Errorf("unexpected format body %s", calls[0].body)
		}
		if !strings.Contains(calls[1].body, "MERGE_ALL") || !strings.Contains(calls[2].body, "pixelSize") || !strings.Contains(calls[3].body, `"note"`) {
			t.Errorf("unexpected bodies %+v", calls[1:])
		}
	})

	t.Run("Bad color", func(t *testing.T) {
		if err := client.Format(ctx, gsheets.GridRange{}, gsheets.CellFormat{Background: "chartreuse"}); err == nil {
			t.Errorf("expected color error")
		}
	})
}

func TestA1(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{1, "A"}, {8, "H"}, {26, "Z"}, {27, "AA"}, {52, "AZ"}, {703, "AAA"},
	}
	for _, tc := range cases {
		if got := gsheets.ColumnLetter(tc.col); got != tc.want {
			t.Errorf("ColumnLetter(%d) = %q, want %q", tc.col, got, tc.want)
		}
	}
	if got := gsheets.A1("Bob's board", 4, 2); got != "'Bob''s board'!B4" {
		t.Errorf("unexpected A1 %q", got)
	}
}

func TestParseColor(t *testing.T) {
	c, err := gsheets.ParseColor("#c9daf8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Red != float64(0xc9)/255 || c.Blue != float64(0xf8)/255 {
		t.Errorf("unexpected color %+v", c)
	}
	white, _ := gsheets.ParseColor("white")
	if white.Red != 1 || white.Green != 1 || white.Blue != 1 {
		t.Errorf("unexpected white %+v", white)
	}
	if _, err := gsheets.ParseColor("#zzzzzz"); err == nil {
		t.Errorf("expected parse error")
	}
}
