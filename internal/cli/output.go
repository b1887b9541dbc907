package cli

import (
	"encoding/json"
	"fmt"
	"io"

	dErrors "playerid/pkg/domain-errors"
)

// Record is one line of command output.
type Record struct {
	Username string `json:"username,omitempty"`
	ID       string `json:"id,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Error    string `json:"error,omitempty"`
	Code     string `json:"code,omitempty"`
}

// Output formats records as text or JSON.
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates an Output for format. Anything but OutputJSON prints text.
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print writes records, one per line.
func (o *Output) Print(records ...Record) {
	if o.format == OutputJSON {
		enc := json.NewEncoder(o.out)
		for _, r := range records {
			_ = enc.Encode(r)
		}
		return
	}
	for _, r := range records {
		switch {
		case r.Error != "":
			fmt.Fprintf(o.out, "%s\terror: %s\n", r.Username, r.Error)
		case r.Username != "" && r.Mode != "":
			fmt.Fprintf(o.out, "%s\t%s\t%s\n", r.Username, r.ID, r.Mode)
		case r.Username != "":
			fmt.Fprintf(o.out, "%s\t%s\n", r.ID, r.Username)
		default:
			fmt.Fprintf(o.out, "%s\t%s\n", r.ID, r.Mode)
		}
	}
}

// PrintError writes err with its domain code.
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{
				"message": err.Error(),
				"code":    string(dErrors.CodeOf(err)),
			},
		})
		fmt.Fprintln(o.errOut, string(data))
		return
	}
	fmt.Fprintf(o.errOut, "Error: %s\n", err)
}

func errorRecord(username string, err error) Record {
	return Record{Username: username, Error: err.Error(), Code: string(dErrors.CodeOf(err))}
}
