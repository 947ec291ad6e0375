package models

// NoticeKind classifies an operator notification.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)

// Notice is a one-shot message shown to the operator.
type Notice struct {
	Kind    NoticeKind
	Message string
}
