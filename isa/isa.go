// Package isa resolves CIL mnemonics into the instruction-kind names a
// pattern entry may match.
package isa

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator splits a mnemonic into its stem and qualifiers.
const Separator = "."

// KindSeparator joins the segments of a derived kind name.
const KindSeparator = "_"

// convNote is attached to conversions, which have many variants but are
// deliberately left to the fallback rule.
const convNote = "note that there is no special casing for conv"

// ISA maps mnemonic stems to the ordered variants they stand for.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from stem to the kinds it may denote.
	stemToKinds map[string][]string
}

// NewISA creates an ISA with no aliases registered.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:     name,
		stemToKinds: make(map[string][]string),
	}
}

// Name returns the name the ISA was created with.
func (isa *ISA) Name() string {
	return isa.isaName
}

func (isa *ISA) registerAlias(stem string, kinds ...string) {
	if len(kinds) == 0 {
		panic("alias " + stem + " must have at least one kind")
	}

	isa.stemToKinds[stem] = kinds
}

// Lookup returns a copy of the variants registered for stem.
func (isa *ISA) Lookup(stem string) ([]string, bool) {
	kinds, ok := isa.stemToKinds[stem]
	if !ok {
		return nil, false
	}

	return append([]string(nil), kinds...), true
}

// Stems returns the registered stems in lexical order.
func (isa *ISA) Stems() []string {
	stems := make([]string, 0, len(isa.stemToKinds))
	for stem := range isa.stemToKinds {
		stems = append(stems, stem)
	}
	sort.Strings(stems)

	return stems
}

// Resolution is the outcome of resolving one mnemonic.
type Resolution struct {
	Mnemonic string
	Stem     string
	// Variants is never empty.
	Variants []string
	// Aliased is true when Variants came from the alias table.
	Aliased bool
	// Note is a diagnostic the emitter prints as a comment, if set.
	Note string
}

// Resolve expands a mnemonic into its variant set.
//
// Mnemonics starting with an upper case letter name exactly one kind and are
// only normalized. Lower case mnemonics are looked up by stem; unknown stems
// fall back to FallbackName.
func (isa *ISA) Resolve(mnemonic string) Resolution {
	stem := Stem(mnemonic)
	res := Resolution{Mnemonic: mnemonic, Stem: stem}

	if IsVerbatim(mnemonic) {
		res.Variants = []string{strings.ReplaceAll(mnemonic, Separator, KindSeparator)}
		return res
	}

	if stem == "conv" {
		res.Note = convNote
	}

	if kinds, ok := isa.Lookup(stem); ok {
		res.Variants = kinds
		res.Aliased = true
		return res
	}

	res.Variants = []string{FallbackName(mnemonic)}

	return res
}

// Stem returns the part of mnemonic before the first separator.
func Stem(mnemonic string) string {
	stem, _, _ := strings.Cut(mnemonic, Separator)
	return stem
}

// IsVerbatim reports whether mnemonic is passed through without a table
// lookup.
func IsVerbatim(mnemonic string) bool {
	r, _ := utf8.DecodeRuneInString(mnemonic)
	return unicode.IsUpper(r)
}

// FallbackName title-cases every segment of mnemonic and joins the segments
// with KindSeparator, so "ldc.i4.m1" becomes "Ldc_I4_M1".
func FallbackName(mnemonic string) string {
	segments := strings.Split(mnemonic, Separator)
	caser := cases.Title(language.Und)
	for i, seg := range segments {
		segments[i] = caser.String(seg)
	}

	return strings.Join(segments, KindSeparator)
}
