package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EditLine is the zero-based line of a freshly rendered record where the
// body of the first section starts.
const EditLine = 16

// NewBoundary returns a random multipart boundary token
func NewBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// RenderRecord generates the content of a new mail-like record
func RenderRecord(company string, at time.Time, meta Metadata, boundary string) string {
	return fmt.Sprintf(`Date: %s
From:
To:
Subject: Interview with %s
%s %s
%s %s
%s %s
%s %s
%s %s
%s %s
MIME-Version: 1.0
Content-Type: multipart/mixed; boundary=%s

--%s
Content-Type: text/plain; charset=utf-8


--%s--
`,
		at.Format(time.RFC1123Z),
		company,
		LabelDescription, meta.Description,
		LabelEmployment, meta.Employment,
		LabelHeadquarters, meta.Headquarters,
		LabelIndustry, meta.Industry,
		LabelTechStack, meta.TechStack,
		LabelWebsite, meta.Website,
		boundary,
		boundary,
		boundary,
	)
}
