package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupExpandFlags(t *testing.T) {
	fs, flags := SetupExpandFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.MaxDepth != 10 {
			t.Errorf("expected MaxDepth 10 by default, got %d", flags.MaxDepth)
		}
		if flags.KeepComponents {
			t.Error("expected KeepComponents to be false by default")
		}
		if flags.Quiet {
			t.Error("expected Quiet to be false by default")
		}
		if flags.Verbose {
			t.Error("expected Verbose to be false by default")
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--max-depth", "5", "--keep-components", "-q", "input.yaml", "output.yaml"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.MaxDepth != 5 {
			t.Errorf("expected MaxDepth 5, got %d", flags.MaxDepth)
		}
		if !flags.KeepComponents {
			t.Error("expected KeepComponents to be true")
		}
		if !flags.Quiet {
			t.Error("expected Quiet to be true")
		}
		if fs.Arg(0) != "input.yaml" {
			t.Errorf("expected first arg 'input.yaml', got '%s'", fs.Arg(0))
		}
		if fs.Arg(1) != "output.yaml" {
			t.Errorf("expected second arg 'output.yaml', got '%s'", fs.Arg(1))
		}
	})

	t.Run("long quiet flag", func(t *testing.T) {
		fs2, flags2 := SetupExpandFlags()
		if err := fs2.Parse([]string{"--quiet", "in.yaml", "out.yaml"}); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if !flags2.Quiet {
			t.Error("expected Quiet to be true")
		}
	})
}

func TestHandleExpand_NoArgs(t *testing.T) {
	err := HandleExpand([]string{"-q"})
	if err == nil {
		t.Fatal("expected error when no files provided")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("expected UsageError, got %T: %v", err, err)
	}
}

func TestHandleExpand_OneArg(t *testing.T) {
	err := HandleExpand([]string{"-q", "input.yaml"})
	if err == nil {
		t.Fatal("expected error when output file missing")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("expected UsageError, got %T: %v", err, err)
	}
}

func TestHandleExpand_Help(t *testing.T) {
	err := HandleExpand([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleExpand_BadMaxDepth(t *testing.T) {
	err := HandleExpand([]string{"--max-depth", "0", "-q", "in.yaml", "out.yaml"})
	if err == nil {
		t.Fatal("expected error for max-depth below 1")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("expected UsageError, got %T: %v", err, err)
	}
}

func TestHandleExpand_OutputOverwritesInput(t *testing.T) {
	err := HandleExpand([]string{"-q", "same.yaml", "same.yaml"})
	if err == nil {
		t.Fatal("expected error when output would overwrite input")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("expected UsageError, got %T: %v", err, err)
	}
}

func TestHandleExpand_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := HandleExpand([]string{"-q", filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "out.yaml")})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		t.Error("missing input should be a fatal error, not a usage error")
	}
}

func TestHandleExpand_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "openapi.yaml")
	source := `openapi: "3.0.3"
info:
  title: Pet API
  version: "1.0.0"
paths:
  /pets:
    get:
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`
	if err := os.WriteFile(inputPath, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("yaml output", func(t *testing.T) {
		outputPath := filepath.Join(dir, "expanded.yaml")
		if err := HandleExpand([]string{"-q", inputPath, outputPath}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		text := string(data)
		if strings.Contains(text, "$ref") {
			t.Error("expected no $ref keys in expanded output")
		}
		if strings.Contains(text, "components:") {
			t.Error("expected components section to be removed")
		}
		if !strings.Contains(text, "name:") {
			t.Error("expected referenced schema to be inlined")
		}
		if !strings.Contains(text, `"200":`) {
			t.Error("expected quoted status code in output")
		}
	})

	t.Run("json output", func(t *testing.T) {
		outputPath := filepath.Join(dir, "expanded.json")
		if err := HandleExpand([]string{"-q", inputPath, outputPath}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		text := string(data)
		if !strings.HasPrefix(text, "{") {
			t.Error("expected JSON output")
		}
		if strings.Contains(text, "$ref") {
			t.Error("expected no $ref keys in expanded output")
		}
	})

	t.Run("keep components", func(t *testing.T) {
		outputPath := filepath.Join(dir, "kept.yaml")
		if err := HandleExpand([]string{"-q", "--keep-components", inputPath, outputPath}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "components:") {
			t.Error("expected components section to be kept")
		}
	})
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name       string
		outputPath string
		inputPath  string
		wantErr    bool
	}{
		{"distinct paths", "out.yaml", "in.yaml", false},
		{"stdout output", "-", "in.yaml", false},
		{"stdin input", "out.yaml", "-", false},
		{"same path", "spec.yaml", "spec.yaml", true},
		{"same path relative vs clean", "./spec.yaml", "spec.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.outputPath, tt.inputPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q, %q) error = %v, wantErr %v", tt.outputPath, tt.inputPath, err, tt.wantErr)
			}
			if tt.wantErr {
				var usageErr *UsageError
				if !errors.As(err, &usageErr) {
					t.Errorf("expected UsageError, got %T", err)
				}
			}
		})
	}
}
