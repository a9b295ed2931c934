package validation

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NodeIDPattern определяет допустимый формат идентификатора узла
// Латинские буквы, цифры, '_', '-', '.'; длина 1-64 символа
var NodeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,64}$`)

const (
	// MaxPathLen максимальная длина пути документа в байтах
	MaxPathLen = 512
	// MaxContentLen максимальный размер содержимого документа в байтах
	MaxContentLen = 8 << 20
)

// ValidateDocumentPath проверяет путь документа: относительный, в форме path.Clean,
// без выхода за корень ("..") и управляющих символов
func ValidateDocumentPath(p string) error {
	if p == "" {
		return fmt.Errorf("document path cannot be empty")
	}

	if len(p) > MaxPathLen {
		return fmt.Errorf("document path must not exceed %d bytes", MaxPathLen)
	}

	if !utf8.ValidString(p) {
		return fmt.Errorf("document path must be valid UTF-8")
	}

	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("document path must be relative: %q", p)
	}

	if path.Clean(p) != p {
		return fmt.Errorf("document path must be clean: %q", p)
	}

	if p == ".." || strings.HasPrefix(p, "../") {
		return fmt.Errorf("document path must not leave the root: %q", p)
	}

	for _, r := range p {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("document path contains control characters: %q", p)
		}
	}

	return nil
}

// ValidateContent проверяет размер и кодировку содержимого документа
func ValidateContent(content string) error {
	if len(content) > MaxContentLen {
		return fmt.Errorf("document content must not exceed %d bytes", MaxContentLen)
	}
	if !utf8.ValidString(content) {
		return fmt.Errorf("document content must be valid UTF-8")
	}
	return nil
}

// ValidateNodeID проверяет идентификатор узла
func ValidateNodeID(nodeID string) error {
	if nodeID == "" {
		return fmt.Errorf("node id cannot be empty")
	}

	if !NodeIDPattern.MatchString(nodeID) {
		return fmt.Errorf("node id can only contain letters, numbers, '_', '-' and '.' (1-64 characters)")
	}

	return nil
}
