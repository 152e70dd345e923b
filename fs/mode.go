package fs

import "github.com/pkg/errors"

// ErrPermissionsOutOfRange is returned when mode bits do not fit the
// owner/group/other permission layout.
var ErrPermissionsOutOfRange = errors.New("permissions out of range")

const permChars = "rwxrwxrwx"

// ModeString renders the entry mode as a fixed 10-character ls-style
// string: a type character followed by three rwx groups for owner,
// group and other, most significant group first.
func (e *Entry) ModeString() (string, error) {
	if e.Permissions > 0o777 {
		return "", errors.Wrapf(ErrPermissionsOutOfRange, "%#o", e.Permissions)
	}

	var b [10]byte

	b[0] = '-'
	if e.Dir {
		b[0] = 'd'
	}

	for i := 0; i < 9; i++ {
		if e.Permissions&(1<<(8-i)) != 0 {
			b[i+1] = permChars[i]
		} else {
			b[i+1] = '-'
		}
	}

	return string(b[:]), nil
}
