package service

// User-facing texts. They never carry paths or OS error details.
const (
	MsgNoDebugFile = "There is currently no debug file. Either it cannot be accessed or no errors have occurred since enabling error logging. You can try adding a test entry to the log to make sure everything is working."

	MsgCannotRead = "Debug log could not be read."

	MsgTestEntryTriggered = "A test error was triggered. Check to see if it was added to the log."

	MsgDeleted = "Debug log was deleted."

	MsgCannotDelete = "Debug log could not be deleted."

	MsgActionFailed = "Action failed. Please refresh the page and retry."

	MsgConfirmDelete = "Are you sure you want to delete the debug log?"

	// TestEntry is the line written by AppendTestEntry.
	TestEntry = "This is a test notice. It was purposely triggered from the debug log admin screen."
)
