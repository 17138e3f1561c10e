package pngcrypt_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	pngcrypt "github.com/shepherd1530/PNGCrypt"
)

func writeTempPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, neutralPNG(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSave_RoundTripThroughDisk(t *testing.T) {
	path := writeTempPNG(t)

	img, err := pngcrypt.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	token, err := img.Embed([]byte("meet at dawn"))
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	if err := img.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened, err := pngcrypt.Open(path)
	if err != nil {
		t.Fatalf("re-open failed: %v", err)
	}
	payload, err := reopened.Extract(token)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if string(payload) != "meet at dawn" {
		t.Errorf("payload = %q", payload)
	}
}

func TestSaveAs_OriginalUntouched(t *testing.T) {
	path := writeTempPNG(t)
	outPath := filepath.Join(filepath.Dir(path), "out.png")

	img, err := pngcrypt.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.Embed([]byte("secret")); err != nil {
		t.Fatal(err)
	}
	if err := img.SaveAs(outPath); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	orig, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(orig, neutralPNG()) {
		t.Error("SaveAs modified the original file")
	}

	if _, err := pngcrypt.Open(outPath); err != nil {
		t.Errorf("written file does not parse: %v", err)
	}
}

func TestSave_WithBackup(t *testing.T) {
	path := writeTempPNG(t)

	img, err := pngcrypt.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.Embed([]byte("secret")); err != nil {
		t.Fatal(err)
	}
	if err := img.Save(pngcrypt.WithBackup(".bak")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if !bytes.Equal(backup, neutralPNG()) {
		t.Error("backup does not match the original bytes")
	}
}

func TestSave_WithValidation(t *testing.T) {
	path := writeTempPNG(t)

	img, err := pngcrypt.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.Embed([]byte("secret")); err != nil {
		t.Fatal(err)
	}
	if err := img.Save(pngcrypt.WithValidation()); err != nil {
		t.Fatalf("Save with validation failed: %v", err)
	}
}

func TestSave_NoPath(t *testing.T) {
	img, err := pngcrypt.OpenBytes(neutralPNG())
	if err != nil {
		t.Fatal(err)
	}

	if err := img.Save(); err == nil {
		t.Error("Save on a byte-opened image should fail")
	}
}

func TestSave_NoTempFileLeftBehind(t *testing.T) {
	path := writeTempPNG(t)

	img, err := pngcrypt.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := img.Save(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != filepath.Base(path) {
			t.Errorf("unexpected file left behind: %s", e.Name())
		}
	}
}
