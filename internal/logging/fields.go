package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError   = "error"
	FieldPath    = "path"
	FieldCommand = "command"
	FieldInput   = "input"
	FieldOutput  = "output"

	// Configuration fields.
	FieldConfig     = "config"
	FieldLoadedFrom = "loaded_from"
	FieldFlavor     = "flavor"
	FieldSequence   = "sequence"
	FieldPrefix     = "prefix"

	// Document fields.
	FieldBlocks    = "blocks"
	FieldLanguage  = "language"
	FieldLexer     = "lexer"
	FieldPositions = "positions"
	FieldEdits     = "edits"
	FieldSelection = "selection"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
