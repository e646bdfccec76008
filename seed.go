package acctbatch

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

var seedTmpl = template.Must(template.New("seed_requests").Funcs(template.FuncMap{
	"ssn":     func(i int) string { return fmt.Sprintf("%010d", 1000000000+i) },
	"name":    seedName,
	"ToLower": strings.ToLower,
	"edu":     func(i int) bool { return i%3 == 0 },
}).Parse(`{{range .}}{{ssn .}} {{name .}} Lee{{name .}} {{ToLower (name .)}}_lee@{{if edu .}}lapc.edu{{else}}computing.com{{end}}
{{end}}`))

// seedName maps i onto a letters-only name, since names may not hold digits.
func seedName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := []byte{'A' + byte(i%26)}
	for n := i / 26; n > 0; n /= 26 {
		b = append(b, letters[n%26])
	}
	return string(b) + "x"
}

// WriteSeedRequests writes n valid requests, a third of them with edu
// addresses.
func WriteSeedRequests(w io.Writer, n int) error {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return seedTmpl.Execute(w, idx)
}
