package speech

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
)

const (
	// Fixed Korean female voice used for all reminders.
	VoiceName = "ko-KR-SunHiNeural"

	outputFormat = "riff-16khz-16bit-mono-pcm"
)

// AzureSynthesizer calls the Azure Cognitive Speech REST endpoint for the
// configured region. The service has no pure-Go SDK, so the SSML request is
// built by hand.
type AzureSynthesizer struct {
	region     string
	key        string
	voice      string
	httpClient *http.Client
}

func NewAzureSynthesizer(region, key string) *AzureSynthesizer {
	return &AzureSynthesizer{
		region:     region,
		key:        key,
		voice:      VoiceName,
		httpClient: http.DefaultClient,
	}
}

func (s *AzureSynthesizer) Synthesize(ctx context.Context, text, outPath string) error {
	endpoint := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", s.region)

	body := ssml(s.voice, text)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", outputFormat)
	req.Header.Set("User-Agent", "carebridge")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("speech synthesis request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("speech synthesis returned status %d: %s", resp.StatusCode, msg)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	if err := os.WriteFile(outPath, audio, 0o644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

func ssml(voice, text string) []byte {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text))
	return []byte(fmt.Sprintf(
		`<speak version='1.0' xml:lang='ko-KR'><voice xml:lang='ko-KR' xml:gender='Female' name='%s'>%s</voice></speak>`,
		voice, escaped.String()))
}
