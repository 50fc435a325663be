package rendering

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/types"
)

// RenderCV reads the template file and compiles it with the given profile and
// plan. The template file is only ever read, never written.
func RenderCV(templatePath string, user *types.UserProfile, plan *types.TailoringPlan) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	return CompileTemplate(string(content), user, plan), nil
}
