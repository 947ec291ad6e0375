package tui

import "github.com/MKhiriev/go-client-panel/models"

type settingsLoadedMsg struct {
	settings    models.Settings
	remoteLogin bool
	syncActive  bool
	err         error
}

type loginDoneMsg struct {
	err error
}

// opDoneMsg reports the end of any background operation. text is shown as
// a toast unless the services already announced the result themselves.
type opDoneMsg struct {
	kind         models.NoticeKind
	text         string
	err          error
	reload       bool
	switchScreen bool
	next         screen
}

type reminderMsg struct {
	client  string
	text    string
	copyErr error
}

type summaryMsg struct {
	text string
}

type passwordGeneratedMsg struct {
	text string
}

type noticeMsg struct {
	notice models.Notice
}

type toastExpiredMsg struct {
	id int
}
