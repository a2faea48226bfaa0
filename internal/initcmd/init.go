package initcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/3-lines-studio/duoserve/internal/adapters/cli"
	"github.com/3-lines-studio/duoserve/internal/templates"
)

// Run scaffolds a new project from the named template into projectDir,
// which must be missing or empty.
func Run(projectDir string, templateName string, out *cli.Output) error {
	out.PrintHeader("duoserve init")

	if _, err := os.Stat(projectDir); err == nil {
		entries, err := os.ReadDir(projectDir)
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("directory '%s' already exists and is not empty", projectDir)
		}
	}

	templateFS, err := templates.GetTemplate(templateName)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return fmt.Errorf("invalid template '%s' (available: %v)", templateName, templates.Names())
		}
		return err
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data := templates.DeriveData(projectDir)
	createdCount := 0

	err = fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			targetDir := filepath.Join(projectDir, path)
			if err := os.MkdirAll(targetDir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", targetDir, err)
			}
			return nil
		}

		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		targetPath, isTemplate := templates.ProcessFilename(path, data)
		targetPath = filepath.Join(projectDir, filepath.FromSlash(targetPath))

		processedContent := templates.ProcessContent(content, isTemplate, data)

		if err := os.WriteFile(targetPath, processedContent, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		if isTemplate {
			out.PrintFile(targetPath + " (generated)")
		} else {
			out.PrintFile(targetPath)
		}
		createdCount++

		return nil
	})
	if err != nil {
		return err
	}

	out.PrintSuccess("Created %d files using '%s' template", createdCount, templateName)
	out.PrintDone("")
	out.PrintStep("Next steps:")
	out.PrintStep("  cd %s", projectDir)
	out.PrintStep("  duoserve serve")
	out.PrintStep("  duoserve build")

	return nil
}
