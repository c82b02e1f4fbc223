package blob

import (
	"bytes"
	"context"
	"testing"
)

func TestMemoryStoreUploadDownload(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Upload(ctx, "u1/chat_hist.json", []byte("[]"), false); err != nil {
		t.Fatalf("upload: %v", err)
	}
	data, err := s.Download(ctx, "u1/chat_hist.json")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if !bytes.Equal(data, []byte("[]")) {
		t.Fatalf("got %q", data)
	}

	// overwrite=false must refuse an existing blob
	if err := s.Upload(ctx, "u1/chat_hist.json", []byte("x"), false); err == nil {
		t.Fatalf("expected no-overwrite upload to fail")
	}
	if err := s.Upload(ctx, "u1/chat_hist.json", []byte("x"), true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	exists, err := s.Exists(ctx, "u1/chat_hist.json")
	if err != nil || !exists {
		t.Fatalf("exists: %v %v", exists, err)
	}
	exists, err = s.Exists(ctx, "u2/chat_hist.json")
	if err != nil || exists {
		t.Fatalf("missing blob reported as existing")
	}

	if _, err := s.Download(ctx, "u2/chat_hist.json"); err == nil {
		t.Fatalf("expected download of missing blob to fail")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	if err := s.Upload(ctx, "p", original, true); err != nil {
		t.Fatalf("upload: %v", err)
	}
	original[0] = 'z'

	data, err := s.Download(ctx, "p")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if string(data) != "abc" {
		t.Fatalf("stored data aliased the caller's slice: %q", data)
	}

	data[0] = 'z'
	again, _ := s.Download(ctx, "p")
	if string(again) != "abc" {
		t.Fatalf("downloaded data aliased internal state: %q", again)
	}
}

func TestMemoryStoreContainer(t *testing.T) {
	s := NewMemoryStore()
	if ok, _ := s.ContainerExists(context.Background()); !ok {
		t.Fatalf("container should exist by default")
	}
	s.SetContainerExists(false)
	if ok, _ := s.ContainerExists(context.Background()); ok {
		t.Fatalf("container existence flag not honored")
	}
}
