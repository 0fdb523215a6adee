package server

import (
	"encoding/json"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/darklua-go/darklua/pkg/lua/parser"
	"github.com/darklua-go/darklua/pkg/lua/render"
	"github.com/darklua-go/darklua/pkg/lua/rules"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// transformRequest is decoded from YAML so the rule stack can reuse the
// same document shape accepted by --config: a bare rule name or a
// {rule: name, ...properties} mapping. An empty or absent rules list
// runs the default stack.
type transformRequest struct {
	Source string         `yaml:"source"`
	Rules  rules.Document `yaml:"rules"`
}

type transformResponse struct {
	Output string   `json:"output"`
	Errors []string `json:"errors,omitempty"`
}

// handleTransform parses a YAML body {source, rules}, runs the rule
// stack over the parsed source, and returns the rendered result as JSON.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req transformRequest
	if err := yaml.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ruleStack := req.Rules.ToRules()
	if len(ruleStack) == 0 {
		ruleStack = rules.DefaultStack()
	}

	block, err := parser.New().ParseBytes([]byte(req.Source), "transform")
	if err != nil {
		if s.collector != nil {
			s.collector.RecordParseError()
		}
		writeJSONError(w, http.StatusBadRequest, "parse error: "+err.Error())
		return
	}

	ctx := rules.MockContext()
	var ruleErrors []string
	for _, rule := range ruleStack {
		if err := rule.Process(block, ctx); err != nil {
			ruleErrors = append(ruleErrors, rule.Name()+": "+err.Error())
		}
	}

	output := render.Block(block)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(transformResponse{Output: output, Errors: ruleErrors})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
