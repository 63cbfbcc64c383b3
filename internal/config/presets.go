package config

// builtinPresets holds the bundled YAML text for the three preset names
// recognized by extends (§4.1). The `default` preset mirrors the
// reference tool's shipped rule set; `relaxed` loosens the common
// line-length/comment-spacing frictions; `empty` disables every rule,
// giving a document something to extend when composing a fully custom
// ruleset. These go well beyond the placeholder presets in the
// reference Rust port (which only wired trailing-spaces and
// document-end), since a usable default ships with the whole catalog
// from the rule engines.
var builtinPresets = map[string]string{
	"default": defaultPresetYAML,
	"relaxed": relaxedPresetYAML,
	"empty":   emptyPresetYAML,
}

const defaultPresetYAML = `
rules:
  anchors: enable
  braces: enable
  brackets: enable
  colons: enable
  commas: enable
  comments:
    level: warning
  comments-indentation:
    level: warning
  document-end: disable
  document-start:
    level: warning
  empty-lines: enable
  empty-values: disable
  float-values: disable
  hyphens: enable
  indentation:
    spaces: consistent
    indent-sequences: true
    check-multi-line-strings: false
  key-duplicates: enable
  key-ordering: disable
  line-length:
    max: 80
    allow-non-breakable-words: true
    allow-non-breakable-inline-mappings: false
  new-line-at-end-of-file: enable
  new-lines:
    type: unix
  octal-values: disable
  quoted-strings: disable
  trailing-spaces: enable
  truthy:
    level: warning
`

const relaxedPresetYAML = `
extends: default
rules:
  brackets:
    max-spaces-inside: 1
  braces:
    max-spaces-inside: 1
  colons:
    max-spaces-before: 0
    max-spaces-after: 1
  commas:
    max-spaces-before: 1
    min-spaces-after: 1
    max-spaces-after: 1
  comments:
    require-starting-space: true
    min-spaces-from-content: 1
  document-start: disable
  indentation:
    spaces: consistent
    indent-sequences: consistent
  line-length:
    max: 120
  truthy: disable
`

const emptyPresetYAML = `
rules: {}
`
