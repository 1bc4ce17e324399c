package language

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

// Detect guesses which of defs best describes content and returns its
// identifier. It returns PlainText when content is empty or detection is
// not confident.
func Detect(content []byte, defs []Definition) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return PlainText
	}

	byName := make(map[string]string, len(defs))
	candidates := make([]string, 0, len(defs))
	for _, def := range defs {
		if def.Language == PlainText {
			continue
		}
		name := def.Linguist
		if name == "" {
			name = def.Label
		}
		byName[name] = def.Language
		candidates = append(candidates, name)
	}

	// Shebang lines are the most reliable signal.
	if name, safe := enry.GetLanguageByShebang(content); safe {
		if lang, ok := byName[name]; ok {
			return lang
		}
	}

	if lang := detectByPattern(content, byName); lang != "" {
		return lang
	}

	if len(candidates) == 0 {
		return PlainText
	}

	if name, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		if lang, ok := byName[name]; ok {
			return lang
		}
	}

	return PlainText
}

// patternHints map unmistakable openings to linguist names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var patternHints = []struct {
	prefix string
	name   string
}{
	{"package ", "Go"},
	{"<?php", "PHP"},
	{"<?xml", "XML"},
	{"<!doctype html", "HTML"},
	{"<html", "HTML"},
	{"diff --git ", "Diff"},
	{"--- a/", "Diff"},
	{"#include ", "C"},
}

// detectByPattern checks openings that the classifier tends to get wrong on
// short snippets.
func detectByPattern(content []byte, byName map[string]string) string {
	lower := bytes.ToLower(bytes.TrimSpace(content))

	for _, hint := range patternHints {
		if !bytes.HasPrefix(lower, []byte(hint.prefix)) {
			continue
		}
		if lang, ok := byName[hint.name]; ok {
			return lang
		}
	}
	return ""
}
