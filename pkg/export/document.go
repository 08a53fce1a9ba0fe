package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spherelab/constellation/pkg/cluster"
	"github.com/spherelab/constellation/pkg/layout"
	"github.com/spherelab/constellation/pkg/sphere"
)

// Document is the serializable form of a computed layout. It carries
// everything a renderer needs to draw the constellation: positions on the
// sphere, the cluster structure, and the stats from the computation.
type Document struct {
	// SphereRadius is the radius all positions lie on.
	SphereRadius float64 `json:"sphereRadius" bson:"sphere_radius"`

	// Positions maps node ID to its 3D position.
	Positions map[string]sphere.Vec3 `json:"positions" bson:"positions"`

	// Clusters describes the connected components and their caps.
	Clusters []cluster.Cluster `json:"clusters" bson:"clusters"`

	// Stats summarizes the computation that produced this document.
	Stats layout.Stats `json:"stats" bson:"stats"`

	// GeneratedAt is when the layout was computed.
	GeneratedAt time.Time `json:"generatedAt" bson:"generated_at"`
}

// FromResult builds a Document from a layout result.
func FromResult(result layout.Result, sphereRadius float64) Document {
	return Document{
		SphereRadius: sphereRadius,
		Positions:    result.Positions,
		Clusters:     result.Clusters,
		Stats:        result.Stats,
		GeneratedAt:  time.Now().UTC(),
	}
}

// MarshalDocument serializes a document to indented JSON.
func MarshalDocument(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalDocument deserializes a document from JSON.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal layout document: %w", err)
	}
	return doc, nil
}

// WriteDocument writes a document as JSON to w.
func WriteDocument(w io.Writer, doc Document) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadDocument reads a JSON document from r.
func ReadDocument(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read layout document: %w", err)
	}
	return UnmarshalDocument(data)
}

// WriteDocumentFile writes a document to a file.
func WriteDocumentFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteDocument(f, doc)
}

// ReadDocumentFile reads a document from a file.
func ReadDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return ReadDocument(f)
}
