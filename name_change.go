package guidance

import (
	"strings"
)

// SuffixVocabulary answers whether a lowercased token is a recognized
// street-name suffix (or prefix), e.g. "street", "avenue", "north"
type SuffixVocabulary interface {
	IsSuffix(token string) bool
}

// SuffixTable is a map-backed SuffixVocabulary
type SuffixTable struct {
	suffixes map[string]struct{}
}

// NewSuffixTable returns suffix table for given tokens. Tokens are case-normalized
func NewSuffixTable(tokens []string) *SuffixTable {
	suffixes := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		suffixes[strings.ToLower(token)] = struct{}{}
	}
	return &SuffixTable{suffixes: suffixes}
}

// IsSuffix reports whether given token is contained in the table
func (table *SuffixTable) IsSuffix(token string) bool {
	_, ok := table.suffixes[token]
	return ok
}

// splitNameAndRef splits a street name of the format "{name} ({ref})" into name and ref.
// A name without parentheses carries no ref. An unmatched ')' is bounded to end of string
func splitNameAndRef(full string) (name, ref string) {
	refBegin := strings.IndexByte(full, '(')
	if refBegin < 0 {
		return full, ""
	}
	if refBegin != 0 {
		// drop the separating space in front of '('
		name = full[:refBegin-1]
	}
	refEnd := strings.IndexByte(full, ')')
	if refEnd < refBegin {
		refEnd = len(full)
	}
	ref = full[refBegin+1 : refEnd]
	return name, ref
}

// getPrefixAndSuffix returns the first and the last space-separated token of
// given name, lowercased. A single-word name yields an empty pair
func getPrefixAndSuffix(name string) (prefix, suffix string) {
	suffixPos := strings.LastIndexByte(name, ' ')
	if suffixPos < 0 {
		return "", ""
	}
	prefixPos := strings.IndexByte(name, ' ')
	prefix = strings.ToLower(name[:prefixPos])
	suffix = strings.ToLower(name[suffixPos+1:])
	return prefix, suffix
}

// isPrefixOrSuffixChange reports whether two names differ only by a recognized
// prefix or suffix token, e.g. "Main Street" vs "Main Boulevard" when both
// "street" and "boulevard" are catalogued
func isPrefixOrSuffixChange(first, second string, suffixes SuffixVocabulary) bool {
	firstPrefix, firstSuffix := getPrefixAndSuffix(first)
	secondPrefix, secondSuffix := getPrefixAndSuffix(second)

	recognized := func(token string) bool {
		return token == "" || suffixes.IsSuffix(token)
	}

	isPrefixChange := recognized(firstPrefix) &&
		first[len(firstPrefix):] == second[len(secondPrefix):]

	isSuffixChange := recognized(firstSuffix) &&
		first[:len(first)-len(firstSuffix)] == second[:len(second)-len(secondSuffix)]

	return isPrefixChange || isSuffixChange
}

// RequiresNameAnnounced decides whether the transition between two street
// names must be announced to a traveler. Reference parts encoded as
// "{name} ({ref})" and recognized prefix/suffix substitutions are treated as
// obvious changes which do not need an announcement
func RequiresNameAnnounced(from, to string, suffixes SuffixVocabulary) bool {
	// a name appearing where none existed must always be announced
	if from == "" && to != "" {
		return true
	}

	fromName, fromRef := splitNameAndRef(from)
	toName, toRef := splitNameAndRef(to)

	namesAreEmpty := fromName == "" && toName == ""
	nameIsContained := strings.HasPrefix(fromName, toName) || strings.HasPrefix(toName, fromName)
	suffixChange := isPrefixOrSuffixChange(fromName, toName, suffixes)
	namesAreEqual := fromName == toName || nameIsContained || suffixChange
	nameIsRemoved := fromName != "" && toName == ""

	refsAreEmpty := fromRef == "" && toRef == ""
	refIsContained := fromRef == "" || toRef == "" ||
		strings.Contains(fromRef, toRef) || strings.Contains(toRef, fromRef)
	refIsRemoved := fromRef != "" && toRef == ""

	obviousChange := (namesAreEmpty && refsAreEmpty) ||
		(namesAreEqual && refIsContained) ||
		(namesAreEqual && refsAreEmpty) ||
		(refIsContained && nameIsRemoved) ||
		(namesAreEqual && refIsRemoved) ||
		suffixChange

	return !obviousChange
}
