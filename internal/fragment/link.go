package fragment

import (
	"errors"

	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
)

// ErrMissingLinkField is returned by A and MdA when the URL or the inner
// content of a link is empty.
var ErrMissingLinkField = errors.New("missing required link field")

// Link describes a hyperlink. URL and Inner are required; Inner is already
// rendered content and is emitted as is. Title is optional and escaped.
type Link struct {
	URL   string
	Inner string
	Title string
}

func (l Link) validate() error {
	switch {
	case l.URL == "":
		return missingLinkField("url")
	case l.Inner == "":
		return missingLinkField("inner")
	}
	return nil
}

func missingLinkField(field string) error {
	return derrors.Wrap(ErrMissingLinkField, derrors.CategoryValidation, derrors.SeverityError, "link cannot be rendered").
		WithContext("field", field)
}

// A renders an HTML anchor.
func A(l Link) (string, error) {
	if err := l.validate(); err != nil {
		return "", err
	}
	attrs := `href="` + l.URL + `"`
	if l.Title != "" {
		attrs += ` title="` + EscapeAttribute(l.Title) + `"`
	}
	return "<a " + attrs + ">" + l.Inner + "</a>", nil
}

// MdA renders an inline Markdown link.
func MdA(l Link) (string, error) {
	if err := l.validate(); err != nil {
		return "", err
	}
	return "[" + l.Inner + "](" + l.URL + Wrap(` "`, `"`, EscapeAttribute(l.Title)) + ")", nil
}
