package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type stubService struct {
	maps  map[string]string
	saved map[string]string
	alg   string
}

func (s *stubService) server(t *testing.T) string {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/get_maps", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"maps": s.maps})
	})
	r.Get("/save_map", func(w http.ResponseWriter, r *http.Request) {
		s.saved[r.URL.Query().Get("map_name")] = r.URL.Query().Get("map")
		json.NewEncoder(w).Encode(map[string]any{})
	})
	r.Get("/start_search", func(w http.ResponseWriter, r *http.Request) {
		s.alg = r.URL.Query().Get("alg")
		json.NewEncoder(w).Encode(map[string]any{
			"path":    [][2]int{{0, 0}, {1, 0}, {2, 0}},
			"visited": [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
			"cost":    2.5,
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func newStub() *stubService {
	return &stubService{
		maps:  map[string]string{"maze": "S1X\n11G", "line": "S1G\n"},
		saved: map[string]string{},
	}
}

func writeMap(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestList(t *testing.T) {
	url := newStub().server(t)
	out, err := runCmd(t, "-server", url, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "line\t3x1\nmaze\t3x2\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestGet(t *testing.T) {
	url := newStub().server(t)
	out, err := runCmd(t, "-server", url, "get", "maze")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "S1X\n11G\n" {
		t.Errorf("output = %q", out)
	}

	if _, err := runCmd(t, "-server", url, "get", "nope"); err == nil {
		t.Error("get of an unknown map succeeded")
	}
}

func TestSave(t *testing.T) {
	stub := newStub()
	url := stub.server(t)
	path := writeMap(t, "S11\n11G\n")

	if _, err := runCmd(t, "-server", url, "save", "mine", path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if stub.saved["mine"] != "S11\n11G\n" {
		t.Errorf("saved = %q", stub.saved["mine"])
	}

	// Maps without endpoints never reach the service
	bad := writeMap(t, "111\n11G\n")
	if _, err := runCmd(t, "-server", url, "save", "bad", bad); err == nil {
		t.Error("saved a map without a start")
	}
	if _, ok := stub.saved["bad"]; ok {
		t.Error("invalid map sent to the service")
	}
}

func TestSearch(t *testing.T) {
	stub := newStub()
	url := stub.server(t)
	path := writeMap(t, "S1G\n111\n")

	out, err := runCmd(t, "-server", url, "-alg", "astar", "search", path)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if stub.alg != "astar" {
		t.Errorf("alg = %q", stub.alg)
	}
	for _, want := range []string{"path: (0,0) (1,0) (2,0)", "cost: 2.5", "visited: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestUsage(t *testing.T) {
	tests := [][]string{
		{},
		{"frob"},
		{"get"},
		{"save", "x"},
		{"search"},
	}
	for _, args := range tests {
		if _, err := runCmd(t, args...); !errors.Is(err, errUsage) {
			t.Errorf("run(%v) error = %v, want usage", args, err)
		}
	}
}

func TestBadAlgorithm(t *testing.T) {
	url := newStub().server(t)
	path := writeMap(t, "S1G\n")
	if _, err := runCmd(t, "-server", url, "-alg", "dijkstra", "search", path); err == nil {
		t.Error("unknown algorithm accepted")
	}
}
