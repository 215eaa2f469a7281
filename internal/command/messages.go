package command

// User-facing texts.
const (
	usageMessage        = "Invalid use of command. Try ?steam --help"
	notSupportedMessage = "Currently not supported"
	unknownCommand      = "Unknown command."
	searchFailedMessage = "Something went wrong while searching the store. Please try again later."

	noMatchesFormat    = "I could not find any games matching %s.\nAutomatically removing this message after 30 seconds."
	listTitleFormat    = "Steam results for %s"
	notFoundFormat     = "Sorry, I could not load the store page for %s. If this keeps happening please report a bug. (%s)"
	detailFailedFormat = "Something went wrong while loading details for %s. Please try again later."
)

const helpMessage = "Current commands and their usage as follows.\n" +
	"```?help - Displays a list of commands and their usage.\n\n" +
	"?steam 'searchterm' - Will display the first 10 results (or fewer) found by parsing the steam store. " +
	"These results may be filtered by the user who typed the command by reacting to the comment, " +
	"or deleted if no matches are found.```\n"
