package pkg

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "clog"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "ardnew" && a.Email == "andrew@ardnew.com"
	}) {
		t.Errorf("Expected Author to contain ardnew, got %v", Author)
	}
}

func TestAuthorInfo_String(t *testing.T) {
	tests := []struct {
		author   AuthorInfo
		expected string
	}{
		{AuthorInfo{"ardnew", "andrew@ardnew.com"}, "ardnew <andrew@ardnew.com>"},
		{AuthorInfo{Name: "anon"}, "anon"},
	}

	for _, tt := range tests {
		if got := tt.author.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestError_WrapKeepsSentinel(t *testing.T) {
	cause := fs.ErrNotExist
	err := error(ErrReadConfig.Wrap(cause))

	if !errors.Is(err, ErrReadConfig) {
		t.Error("expected wrapped error to match sentinel")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected wrapped error to match cause")
	}
	if errors.Is(err, ErrParseConfig) {
		t.Error("unexpected match with unrelated sentinel")
	}

	expected := "failed to read configuration: file does not exist"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestError_WrapDoesNotAliasSentinel(t *testing.T) {
	a := ErrWriteLine.Wrapf("first")
	b := ErrWriteLine.Wrapf("second")

	if a.Error() == b.Error() {
		t.Errorf("wrapped errors share storage: %q", a.Error())
	}
	if len(ErrWriteLine) != 1 {
		t.Errorf("sentinel modified: %v", ErrWriteLine)
	}
}

func TestError_IsNestedChain(t *testing.T) {
	err := error(ErrWriteLine.Wrap(ErrReadInput))

	if !errors.Is(err, ErrWriteLine.Wrap(ErrReadInput)) {
		t.Error("expected nested chain to match itself")
	}
	if !errors.Is(err, ErrWriteLine) {
		t.Error("expected nested chain to match outer sentinel")
	}
	if !errors.Is(err, ErrReadInput) {
		t.Error("expected nested chain to match inner sentinel")
	}
	if errors.Is(err, ErrWriteLine.Wrap(ErrReadConfig)) {
		t.Error("unexpected match with different nested sentinel")
	}
}

func TestMakeError_SkipsNil(t *testing.T) {
	if e := MakeError(nil, nil); e != nil {
		t.Errorf("Expected nil, got %v", e)
	}

	e := MakeError(nil, errors.New("a"), nil, errors.New("b"))
	if e.Error() != "a: b" {
		t.Errorf("Expected %q, got %q", "a: b", e.Error())
	}
}

func TestUnwrapErrors_FlattensJoined(t *testing.T) {
	inner := errors.New("inner")
	joined := errors.Join(inner, errors.New("other"))

	chain := UnwrapErrors(joined)
	if len(chain) != 3 {
		t.Fatalf("Expected 3 errors, got %d: %v", len(chain), chain)
	}
	if chain[0] != inner {
		t.Errorf("Expected innermost first, got %v", chain[0])
	}
}
