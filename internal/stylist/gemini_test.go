package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockRoundTripper func(req *http.Request) (*http.Response, error)

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}, nil
}

func TestNewGeminiClient_Defaults(t *testing.T) {
	c := NewGeminiClient("key", "", 0)
	assert.Equal(t, DefaultModel, c.model)
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
}

func TestGeminiClient_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		c := NewGeminiClient("secret", "gemini-2.5-flash", time.Second)
		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent", req.URL.String())
			assert.Equal(t, "secret", req.Header.Get("x-goog-api-key"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Contains(t, body, "systemInstruction")
			cfg := body["generationConfig"].(map[string]any)
			assert.Equal(t, "application/json", cfg["responseMimeType"])

			return respond(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"{\"a\":"},{"text":"1}"}]}}]}`)
		})

		text, err := c.Generate(ctx, GenerateRequest{SystemInstruction: "sys", Prompt: "hi", JSON: true})
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, text)
	})

	t.Run("PlainText", func(t *testing.T) {
		c := NewGeminiClient("secret", "", time.Second)
		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.NotContains(t, body, "generationConfig")
			assert.NotContains(t, body, "systemInstruction")
			return respond(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"yo"}]}}]}`)
		})

		text, err := c.Generate(ctx, GenerateRequest{Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "yo", text)
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, err := NewGeminiClient("", "", time.Second).Generate(ctx, GenerateRequest{Prompt: "hi"})
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("APIError", func(t *testing.T) {
		c := NewGeminiClient("secret", "", time.Second)
		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			return respond(http.StatusTooManyRequests, `{"error":"quota"}`)
		})

		_, err := c.Generate(ctx, GenerateRequest{Prompt: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("NoCandidates", func(t *testing.T) {
		c := NewGeminiClient("secret", "", time.Second)
		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			return respond(http.StatusOK, `{"candidates":[]}`)
		})

		_, err := c.Generate(ctx, GenerateRequest{Prompt: "hi"})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("TransportError", func(t *testing.T) {
		c := NewGeminiClient("secret", "", time.Second)
		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("offline")
		})

		_, err := c.Generate(ctx, GenerateRequest{Prompt: "hi"})
		assert.Error(t, err)
	})
}
