package tinge

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "A terminal text-styling helper"
	MsgRootLong     = "tinge composes plain text, style directives and nested groups\ninto ANSI-styled terminal output, degrading to plain text when\nstyling is disabled."
	MsgStylesShort  = "List available directives and styles"
	MsgStylesLong   = "List every escape directive and every configured style alias,\neach with a styled sample."
	MsgRenderShort  = "Compose markup items into styled output"
	MsgRenderLong   = "Compose the given items into one styled string.\n\nArguments starting with ':' activate a directive or style (\":red\"),\n'[' and ']' open and close nested groups, everything else is plain\ntext. With --tags, input is parsed as tag markup instead\n(\"<red>hi</red>\"), read from the arguments or stdin."
	MsgDocsShort    = "Show documentation for the markup language"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor   = "When to emit escapes: auto, always or never"
	MsgFlagTags    = "Parse input as tag markup (<red>hi</red>)"
)
