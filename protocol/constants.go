package protocol

// Protocol command verbs (RFC 2229)
const (
	CmdDefine     = "DEFINE"
	CmdMatch      = "MATCH"
	CmdShowDB     = "SHOW DB"
	CmdShowStrat  = "SHOW STRAT"
	CmdShowInfo   = "SHOW INFO"
	CmdShowServer = "SHOW SERVER"
	CmdClient     = "CLIENT"
	CmdStatus     = "STATUS"
	CmdHelp       = "HELP"
	CmdAuth       = "AUTH"
	CmdQuit       = "QUIT"
)

// Response status codes (3-digit, RFC 2229 section 5)
const (
	// Continuation/body codes
	StatusDatabasesFollow  = 110 // n databases present - text follows
	StatusStrategiesFollow = 111 // n strategies available - text follows
	StatusDatabaseInfo     = 112 // database information follows
	StatusHelpText         = 113 // help text follows
	StatusServerInfo       = 114 // server information follows
	StatusChallengeFollows = 130 // challenge follows (SASL)
	StatusDefinitionsFound = 150 // n definitions retrieved - definitions follow
	StatusDefinitionBody   = 151 // word database name - text follows
	StatusMatchesFound     = 152 // n matches found - text follows

	// Completion codes
	StatusInfo    = 210 // optional timing and statistical information
	StatusBanner  = 220 // text msg-id (initial greeting)
	StatusClosing = 221 // closing connection
	StatusAuthOK  = 230 // authentication successful
	StatusOK      = 250 // ok (optional timing information here)

	// Temporary failure codes
	StatusTemporarilyUnavailable = 420 // server temporarily unavailable
	StatusShuttingDown           = 421 // server shutting down at operator request

	// Permanent failure codes
	StatusSyntaxErrorCommand     = 500 // syntax error, command not recognized
	StatusSyntaxErrorParameters  = 501 // syntax error, illegal parameters
	StatusCommandNotImplemented  = 502 // command not implemented
	StatusParamNotImplemented    = 503 // command parameter not implemented
	StatusAccessDenied           = 530 // access denied
	StatusAuthDenied             = 531 // access denied, use "SHOW INFO" for server information
	StatusUnknownMechanism       = 532 // access denied, unknown mechanism
	StatusInvalidDatabase        = 550 // invalid database, use "SHOW DB" for list of databases
	StatusInvalidStrategy        = 551 // invalid strategy, use "SHOW STRAT" for a list of strategies
	StatusNoMatch                = 552 // no match
	StatusNoDatabasesPresent     = 554 // no databases present
	StatusNoStrategiesAvailable  = 555 // no strategies available
)

// Wire framing
const (
	CRLF = "\r\n"

	// BodyTerminator ends a multi-line text response on a line by itself.
	BodyTerminator = "."
)
