// Package server provides the HTTP handlers for the discovery API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rustycoin/server/internal/node"
	log "github.com/sirupsen/logrus"
)

// noActiveNodes is the sentinel body /query answers when the registry is empty.
const noActiveNodes = "no active nodes in the network"

// nodeRequest mirrors the JSON body of /register and /deregister. Pointer
// fields distinguish absent required fields from zero values.
type nodeRequest struct {
	Address   *string `json:"address"`
	AddressV6 string  `json:"address_v6"`
	Port      *uint16 `json:"port"`
}

// decodeNode decodes a request body into a Node. Malformed JSON, a missing
// address or a missing port is an error; ports outside uint16 fail the
// decode naturally.
func decodeNode(r *http.Request) (node.Node, error) {
	var req nodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return node.Node{}, fmt.Errorf("decode body: %w", err)
	}
	if req.Address == nil || req.Port == nil {
		return node.Node{}, fmt.Errorf("missing required fields address and port")
	}
	return node.Node{Address: *req.Address, AddressV6: req.AddressV6, Port: *req.Port}, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) error {
	_, err := w.Write([]byte("Hello World!"))
	return err
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) error {
	n, err := decodeNode(r)
	if err != nil {
		log.WithField("caller", "server").WithError(err).Debug("Bad register request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	s.registry.Register(n)
	s.notifyRegistryUpdated()
	log.WithField("caller", "server").Debugf("Registered %s, %d nodes active", n, s.registry.Len())

	_, err = fmt.Fprintf(w, "register node %s successfully", n)
	return err
}

func (s *Server) handleDeregister(w http.ResponseWriter, r *http.Request) error {
	n, err := decodeNode(r)
	if err != nil {
		log.WithField("caller", "server").WithError(err).Debug("Bad deregister request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	s.registry.Deregister(n)
	s.notifyRegistryUpdated()
	log.WithField("caller", "server").Debugf("Deregistered %s, %d nodes active", n, s.registry.Len())

	_, err = fmt.Fprintf(w, "deregister node %s successfully", n)
	return err
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json")

	n, ok := s.registry.PickRandom()
	if !ok {
		return json.NewEncoder(w).Encode(noActiveNodes)
	}
	return json.NewEncoder(w).Encode(n)
}
