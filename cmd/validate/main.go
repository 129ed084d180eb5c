package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mhollis/hearthroom/pkg/spirit"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <room.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &RoomValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Room file is valid!")
}

type RoomValidator struct {
	errors []string
}

var filenamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func (v *RoomValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("room file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !filenamePattern.MatchString(nameWithoutExt) {
		return fmt.Errorf("room filename '%s' must be lowercase snake_case (e.g., quiet_room.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var rf spirit.RoomFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rf); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateRoom(&rf)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *RoomValidator) validateRoom(rf *spirit.RoomFile) {
	if rf.Name == "" {
		v.errors = append(v.errors, "  - room name is required")
	}

	// Per-spirit and cross-spirit invariants (unique IDs, slot coverage)
	// live in the registry constructor; reuse it.
	if _, err := spirit.NewRegistry(rf.Spirits); err != nil {
		v.errors = append(v.errors, "  - "+err.Error())
	}

	// Authoring lint beyond hard invariants: scripts that read badly.
	for _, s := range rf.Spirits {
		for i, line := range s.Script.Intro {
			if strings.TrimSpace(line) == "" {
				v.errors = append(v.errors, fmt.Sprintf("  - spirit %s: intro line %d is blank", s.ID, i))
			}
		}
		if s.Quest.Interactive() && len(s.Script.Filler) == 0 {
			fmt.Printf("  note: spirit %s has no filler line; a default will be used\n", s.ID)
		}
	}
}
