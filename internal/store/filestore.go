package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists artifacts as files under a root directory:
// JSON under data/ (global) and data/jobs/<jobId>/ (job-scoped), rendered
// text artifacts under outputs/.
type FileStore struct {
	root      string
	schemaDir string
}

// NewFileStore creates a file-backed artifact store rooted at root. The
// schema directory is resolved automatically; pass a non-empty schemaDir to
// override.
func NewFileStore(root, schemaDir string) *FileStore {
	if schemaDir == "" {
		schemaDir = ResolveSchemaDir()
	}
	return &FileStore{root: root, schemaDir: schemaDir}
}

// jsonPath maps a job/name pair to its JSON file location
func (s *FileStore) jsonPath(jobID, name string) string {
	if jobID == "" {
		return filepath.Join(s.root, "data", name+".json")
	}
	return filepath.Join(s.root, "data", "jobs", jobID, name+".json")
}

// textPath maps a job/name pair to its text file location. Rendered outputs
// live under outputs/ with the job ID in the file name, matching how
// generated documents are shared with users.
func (s *FileStore) textPath(jobID, name string) string {
	switch name {
	case NameCVTex:
		return filepath.Join(s.root, "outputs", fmt.Sprintf("cv_%s.tex", jobID))
	case NameDiffReport:
		return filepath.Join(s.root, "outputs", fmt.Sprintf("diff_%s.md", jobID))
	default:
		return filepath.Join(s.root, "data", "jobs", jobID, name+".txt")
	}
}

// ReadJSON loads a JSON artifact into out.
func (s *FileStore) ReadJSON(_ context.Context, jobID, name string, out any) error {
	path := s.jsonPath(jobID, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &MissingArtifactError{JobID: jobID, Name: name}
		}
		return &StorageError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &StorageError{Message: fmt.Sprintf("failed to parse %s", path), Cause: err}
	}
	return nil
}

// WriteJSON validates and persists a JSON artifact.
func (s *FileStore) WriteJSON(_ context.Context, jobID, name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return &StorageError{Message: fmt.Sprintf("failed to marshal %s", name), Cause: err}
	}

	if err := validateArtifact(s.schemaDir, name, data); err != nil {
		return err
	}

	path := s.jsonPath(jobID, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &StorageError{Message: fmt.Sprintf("failed to create directory for %s", path), Cause: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &StorageError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}

// ReadText loads a text artifact.
func (s *FileStore) ReadText(_ context.Context, jobID, name string) (string, error) {
	path := s.textPath(jobID, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &MissingArtifactError{JobID: jobID, Name: name}
		}
		return "", &StorageError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return string(data), nil
}

// WriteText persists a text artifact and returns its path relative to the
// store root.
func (s *FileStore) WriteText(_ context.Context, jobID, name, content string) (string, error) {
	path := s.textPath(jobID, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &StorageError{Message: fmt.Sprintf("failed to create directory for %s", path), Cause: err}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", &StorageError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return path, nil
	}
	return rel, nil
}
