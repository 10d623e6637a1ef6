package jsonclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgerrors "textkit/pkg/errors"
)

func TestFetchInto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"value"}`))
	}))
	defer server.Close()

	var out struct {
		Name string `json:"name"`
	}
	if err := New(time.Second).FetchInto(context.Background(), server.URL, &out); err != nil {
		t.Fatalf("FetchInto error: %v", err)
	}
	if out.Name != "value" {
		t.Errorf("decoded name = %q", out.Name)
	}
}

func TestFetchIntoNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var out any
	err := New(time.Second).FetchInto(context.Background(), server.URL, &out)
	if !errors.Is(err, pkgerrors.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestFetchIntoBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	var out any
	err := New(time.Second).FetchInto(context.Background(), server.URL, &out)
	if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFetchIntoUnreachable(t *testing.T) {
	var out any
	err := New(100 * time.Millisecond).FetchInto(context.Background(), "http://127.0.0.1:1/comments", &out)
	if !errors.Is(err, pkgerrors.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	got, err := Encode(map[string]int{"n": 1})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if got != `{"n":1}` {
		t.Errorf("Encode = %q", got)
	}
}
