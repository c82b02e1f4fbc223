package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSynthesizeWritesAudioFile(t *testing.T) {
	var gotKey, gotFormat, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotFormat = r.Header.Get("X-Microsoft-OutputFormat")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte("RIFFfakewav"))
	}))
	defer ts.Close()

	s := NewAzureSynthesizer("koreacentral", "secret")
	// Point the request at the test server instead of the regional endpoint.
	s.httpClient = &http.Client{Transport: rewriteHost(ts)}

	out := filepath.Join(t.TempDir(), "good_morning.wav")
	if err := s.Synthesize(context.Background(), "안녕히 주무셨어요?", out); err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "RIFFfakewav" {
		t.Fatalf("audio mismatch: %q", data)
	}
	if gotKey != "secret" {
		t.Fatalf("subscription key not sent")
	}
	if gotFormat != "riff-16khz-16bit-mono-pcm" {
		t.Fatalf("unexpected output format %q", gotFormat)
	}
	if !strings.Contains(gotBody, VoiceName) || !strings.Contains(gotBody, "안녕히 주무셨어요?") {
		t.Fatalf("unexpected ssml: %s", gotBody)
	}
}

func TestSynthesizeNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer ts.Close()

	s := NewAzureSynthesizer("koreacentral", "wrong")
	s.httpClient = &http.Client{Transport: rewriteHost(ts)}

	out := filepath.Join(t.TempDir(), "out.wav")
	if err := s.Synthesize(context.Background(), "테스트", out); err == nil {
		t.Fatalf("expected an error on non-200 response")
	}
	if _, err := os.Stat(out); err == nil {
		t.Fatalf("no file should be written on failure")
	}
}

func TestSSMLEscapesText(t *testing.T) {
	body := string(ssml(VoiceName, `불안 & "초조" <한 밤>`))
	if strings.Contains(body, `"초조"`) || strings.Contains(body, "<한 밤>") {
		t.Fatalf("text not escaped: %s", body)
	}
	if !strings.Contains(body, "&amp;") {
		t.Fatalf("ampersand not escaped: %s", body)
	}
}

// rewriteHost redirects any outgoing request to the test server.
func rewriteHost(ts *httptest.Server) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		req.URL.Scheme = "http"
		req.URL.Host = strings.TrimPrefix(ts.URL, "http://")
		return http.DefaultTransport.RoundTrip(req)
	})
}

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
