package core

import "time"

// Timestamp wraps time.Time so domain types never import "time" directly.
type Timestamp time.Time

// Now returns the current timestamp.
func Now() Timestamp { return Timestamp(time.Now()) }

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time { return time.Time(t) }

func (t Timestamp) IsZero() bool { return time.Time(t).IsZero() }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(tm)
	return nil
}

func (t Timestamp) String() string { return time.Time(t).Format(time.RFC3339) }
