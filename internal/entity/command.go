package entity

type CommandKind string

const (
	CommandMove        CommandKind = "move"
	CommandToggleBot   CommandKind = "toggle_bot"
	CommandResetScores CommandKind = "reset_scores"
	CommandNewRound    CommandKind = "new_round"
	CommandHelp        CommandKind = "help"
	CommandQuit        CommandKind = "quit"
)

// Command is one request from a human at the console. Column is only set for CommandMove.
type Command struct {
	Kind   CommandKind
	Column int
}

func MoveCommand(col int) Command {
	return Command{Kind: CommandMove, Column: col}
}
