//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// Wire types mirroring the management API payloads. The e2e module is
// standalone, so the shapes are declared here rather than imported.

type apiSubStatus struct {
	NodeCount   int       `json:"node_count"`
	Delta       int       `json:"delta"`
	RefreshedAt time.Time `json:"refreshed_at"`
	Error       string    `json:"error,omitempty"`
}

type apiSubscription struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	URL     string       `json:"url"`
	Profile string       `json:"profile"`
	Enabled bool         `json:"enabled"`
	Status  apiSubStatus `json:"status"`
}

type apiNode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Protocol string `json:"protocol"`
	Address  string `json:"address"`
	Port     int    `json:"port"`
	Profile  string `json:"profile"`
	Enabled  bool   `json:"enabled"`
	Source   string `json:"source,omitempty"`
}

type apiProfile struct {
	Name  string   `json:"name"`
	Subs  []string `json:"subs"`
	Nodes []string `json:"nodes"`
}

type apiSettings struct {
	DefaultProfile     string `json:"default_profile"`
	AutoRefreshMinutes int    `json:"auto_refresh_minutes"`
	ExportFormat       string `json:"export_format"`
}

// mockServer is an in-memory stand-in for the subscription server's
// management API, just enough for the TUI to run against.
type mockServer struct {
	mu       sync.Mutex
	subs     []apiSubscription
	nodes    []apiNode
	profiles []apiProfile
	settings apiSettings

	httpSrv *httptest.Server
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	ms := &mockServer{
		settings: apiSettings{ExportFormat: "links"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/settings", ms.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", ms.handlePutSettings)
	mux.HandleFunc("GET /api/subscriptions", ms.handleListSubs)
	mux.HandleFunc("POST /api/subscriptions", ms.handleCreateSub)
	mux.HandleFunc("POST /api/subscriptions/delete", ms.handleDeleteSubs)
	mux.HandleFunc("POST /api/subscriptions/{id}/refresh", ms.handleRefreshSub)
	mux.HandleFunc("GET /api/nodes", ms.handleListNodes)
	mux.HandleFunc("POST /api/nodes", ms.handleCreateNode)
	mux.HandleFunc("POST /api/nodes/delete", ms.handleDeleteNodes)
	mux.HandleFunc("POST /api/items/enable", ms.handleEnable)
	mux.HandleFunc("POST /api/items/move", ms.handleMove)
	mux.HandleFunc("GET /api/profiles", ms.handleListProfiles)
	mux.HandleFunc("POST /api/profiles", ms.handleCreateProfile)
	mux.HandleFunc("POST /api/profiles/rename", ms.handleRenameProfile)
	mux.HandleFunc("POST /api/profiles/delete", ms.handleDeleteProfile)
	mux.HandleFunc("POST /api/export", ms.handleExport)

	ms.httpSrv = httptest.NewServer(mux)
	t.Cleanup(ms.httpSrv.Close)
	return ms
}

func (ms *mockServer) URL() string { return ms.httpSrv.URL }

// seedDefault loads a small fixture set: three subscriptions, two manual
// nodes and one profile holding the first subscription.
func (ms *mockServer) seedDefault() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.subs = []apiSubscription{
		{ID: "sub-1", Name: "alpha-sub", URL: "https://example.com/alpha", Profile: "home", Enabled: true,
			Status: apiSubStatus{NodeCount: 12, RefreshedAt: time.Now().Add(-time.Hour)}},
		{ID: "sub-2", Name: "bravo-sub", URL: "https://example.com/bravo", Enabled: true,
			Status: apiSubStatus{NodeCount: 5, Delta: 2, RefreshedAt: time.Now().Add(-10 * time.Minute)}},
		{ID: "sub-3", Name: "charlie-sub", URL: "https://example.com/charlie", Enabled: false},
	}
	ms.nodes = []apiNode{
		{ID: "node-1", Name: "tokyo-vmess", Protocol: "vmess", Address: "jp.example.com", Port: 443, Enabled: true},
		{ID: "node-2", Name: "ams-trojan", Protocol: "trojan", Address: "nl.example.com", Port: 8443, Enabled: true},
	}
	ms.profiles = []apiProfile{
		{Name: "home", Subs: []string{"sub-1"}},
	}
}

func (ms *mockServer) addSubscription(sub apiSubscription) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.subs = append(ms.subs, sub)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (ms *mockServer) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	writeJSON(w, ms.settings)
}

func (ms *mockServer) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if err := json.NewDecoder(r.Body).Decode(&ms.settings); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func (ms *mockServer) handleListSubs(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	writeJSON(w, map[string][]apiSubscription{"subscriptions": ms.subs})
}

func (ms *mockServer) handleCreateSub(w http.ResponseWriter, r *http.Request) {
	var sub apiSubscription
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if sub.ID == "" {
		sub.ID = fmt.Sprintf("sub-%d", len(ms.subs)+1)
	}
	ms.subs = append(ms.subs, sub)
	writeJSON(w, sub)
}

func (ms *mockServer) handleDeleteSubs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	kept := ms.subs[:0]
	for _, s := range ms.subs {
		if !containsID(req.IDs, s.ID) {
			kept = append(kept, s)
		}
	}
	ms.subs = kept
}

func (ms *mockServer) handleRefreshSub(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := range ms.subs {
		if ms.subs[i].ID == id {
			ms.subs[i].Status.RefreshedAt = time.Now()
			ms.subs[i].Status.Delta = 1
			ms.subs[i].Status.NodeCount++
			writeJSON(w, ms.subs[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "subscription not found")
}

func (ms *mockServer) handleListNodes(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	writeJSON(w, map[string][]apiNode{"nodes": ms.nodes})
}

func (ms *mockServer) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	var node apiNode
	if err := json.NewDecoder(r.Body).Decode(&node); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if node.ID == "" {
		node.ID = fmt.Sprintf("node-%d", len(ms.nodes)+1)
	}
	ms.nodes = append(ms.nodes, node)
	writeJSON(w, node)
}

func (ms *mockServer) handleDeleteNodes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	kept := ms.nodes[:0]
	for _, n := range ms.nodes {
		if !containsID(req.IDs, n.ID) {
			kept = append(kept, n)
		}
	}
	ms.nodes = kept
}

func (ms *mockServer) handleEnable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind    string   `json:"kind"`
		IDs     []string `json:"ids"`
		Enabled bool     `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := range ms.subs {
		if containsID(req.IDs, ms.subs[i].ID) {
			ms.subs[i].Enabled = req.Enabled
		}
	}
	for i := range ms.nodes {
		if containsID(req.IDs, ms.nodes[i].ID) {
			ms.nodes[i].Enabled = req.Enabled
		}
	}
}

func (ms *mockServer) handleMove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind    string   `json:"kind"`
		IDs     []string `json:"ids"`
		Profile string   `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := range ms.subs {
		if containsID(req.IDs, ms.subs[i].ID) {
			ms.subs[i].Profile = req.Profile
		}
	}
	for i := range ms.nodes {
		if containsID(req.IDs, ms.nodes[i].ID) {
			ms.nodes[i].Profile = req.Profile
		}
	}
}

func (ms *mockServer) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	writeJSON(w, map[string][]apiProfile{"profiles": ms.profiles})
}

func (ms *mockServer) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, p := range ms.profiles {
		if p.Name == req.Name {
			writeError(w, http.StatusConflict, "profile already exists")
			return
		}
	}
	ms.profiles = append(ms.profiles, apiProfile{Name: req.Name})
}

func (ms *mockServer) handleRenameProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldName string `json:"old_name"`
		NewName string `json:"new_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := range ms.profiles {
		if ms.profiles[i].Name == req.OldName {
			ms.profiles[i].Name = req.NewName
		}
	}
	for i := range ms.subs {
		if ms.subs[i].Profile == req.OldName {
			ms.subs[i].Profile = req.NewName
		}
	}
	for i := range ms.nodes {
		if ms.nodes[i].Profile == req.OldName {
			ms.nodes[i].Profile = req.NewName
		}
	}
}

func (ms *mockServer) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	kept := ms.profiles[:0]
	for _, p := range ms.profiles {
		if p.Name != req.Name {
			kept = append(kept, p)
		}
	}
	ms.profiles = kept
	for i := range ms.subs {
		if ms.subs[i].Profile == req.Name {
			ms.subs[i].Profile = ""
		}
	}
	for i := range ms.nodes {
		if ms.nodes[i].Profile == req.Name {
			ms.nodes[i].Profile = ""
		}
	}
}

func (ms *mockServer) handleExport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind   string   `json:"kind"`
		IDs    []string `json:"ids"`
		Format string   `json:"format"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	var links []string
	for _, n := range ms.nodes {
		if containsID(req.IDs, n.ID) {
			links = append(links, fmt.Sprintf("%s://%s:%d#%s", n.Protocol, n.Address, n.Port, n.Name))
		}
	}
	writeJSON(w, map[string]string{"content": strings.Join(links, "\n")})
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
