package constant

import "fmt"

type TransferStatus int

const (
	TransferStatusPending  TransferStatus = 0
	TransferStatusAccepted TransferStatus = 1
	TransferStatusRejected TransferStatus = 2
)

var TransferStatusName = map[TransferStatus]string{
	TransferStatusPending:  "pending",
	TransferStatusAccepted: "accepted",
	TransferStatusRejected: "rejected",
}

func (s TransferStatus) String() string {
	if name, ok := TransferStatusName[s]; ok {
		return name
	}
	return "unknown"
}

type TransferEvent string

const (
	TransferEventCreated  TransferEvent = "created"
	TransferEventAccepted TransferEvent = "accepted"
	TransferEventRejected TransferEvent = "rejected"
)

func (s TransferStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *TransferStatus) UnmarshalText(b []byte) error {
	for status, name := range TransferStatusName {
		if name == string(b) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown transfer status %q", string(b))
}
