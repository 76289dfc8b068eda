package domain

// Intent classifies what a chat line asked for. The chat service
// matches intents in a fixed priority order; the first match wins.
type Intent string

// Recognised chat intents.
const (
	// IntentLoadFolder loads every supported file in a folder.
	IntentLoadFolder Intent = "load_folder"

	// IntentLoadFile loads a single file into the index.
	IntentLoadFile Intent = "load_file"

	// IntentAsk runs a ranked query over the loaded documents.
	IntentAsk Intent = "ask"

	// IntentListDocs lists the loaded documents.
	IntentListDocs Intent = "list_docs"

	// IntentClearDocs clears the index.
	IntentClearDocs Intent = "clear_docs"

	// IntentRemember stores a fact.
	IntentRemember Intent = "remember"

	// IntentRecall looks up a fact by key.
	IntentRecall Intent = "recall"

	// IntentForget deletes a fact.
	IntentForget Intent = "forget"

	// IntentListFacts lists remembered fact keys.
	IntentListFacts Intent = "list_facts"

	// IntentAddTodo appends a todo entry.
	IntentAddTodo Intent = "add_todo"

	// IntentListTodos lists todo entries.
	IntentListTodos Intent = "list_todos"

	// IntentDoneTodo completes a todo by its 1-based position.
	IntentDoneTodo Intent = "done_todo"

	// IntentClearTodos removes all todo entries.
	IntentClearTodos Intent = "clear_todos"

	// IntentGreet answers a greeting.
	IntentGreet Intent = "greet"

	// IntentThanks acknowledges thanks.
	IntentThanks Intent = "thanks"

	// IntentBye ends the chat session.
	IntentBye Intent = "bye"

	// IntentTime reports the current time.
	IntentTime Intent = "time"

	// IntentDate reports the current date.
	IntentDate Intent = "date"

	// IntentJoke tells a joke.
	IntentJoke Intent = "joke"

	// IntentHelp lists what the assistant understands.
	IntentHelp Intent = "help"

	// IntentEcho is the fallback for unrecognised lines.
	IntentEcho Intent = "echo"
)

// String returns the string representation.
func (i Intent) String() string {
	return string(i)
}

// EndsSession reports whether this intent terminates an interactive chat.
func (i Intent) EndsSession() bool {
	return i == IntentBye
}

// Speaker labels used in transcripts and the chat UI.
const (
	// SpeakerUser labels lines typed by the user.
	SpeakerUser = "you"

	// SpeakerBot labels lines produced by the assistant.
	SpeakerBot = "parley"
)

// ChatReply is the outcome of handling one chat line.
type ChatReply struct {
	// Intent is the matched intent.
	Intent Intent

	// Text is the assistant's reply, ready to display.
	Text string
}
