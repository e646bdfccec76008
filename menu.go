package acctbatch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
)

const menuText = `
--- Bank Account Menu ---
1) Process all new checking account requests (once)
2) Print successfully created accounts to screen
3) Print invalid records to screen
4) Print the log file
5) Quit and write accounts to output file
6) Write accounts statement to PDF
Choice: `

// Menu is the interactive command loop over one session.
type Menu struct {
	Sess  *Session
	Files FilesConfig
	In    io.Reader
	Out   io.Writer
	Log   *zerolog.Logger

	processed bool
}

// Run reads whitespace-separated choices until choice 5 or until In is
// exhausted. Only choice 5 writes the output file.
func (m *Menu) Run() error {
	sc := bufio.NewScanner(m.In)
	sc.Split(bufio.ScanWords)
	for {
		io.WriteString(m.Out, menuText)
		if !sc.Scan() {
			io.WriteString(m.Out, "\n")
			return sc.Err()
		}
		io.WriteString(m.Out, "\n")

		choice, err := strconv.Atoi(sc.Text())
		if err != nil {
			choice = 0
		}
		switch choice {
		case 1:
			m.process()
		case 2:
			m.print(RenderAccounts(m.Out, m.Sess.Accounts(), m.Sess.Config().Decimals))
		case 3:
			m.print(RenderRejections(m.Out, m.Sess.Rejections()))
		case 4:
			if err = PrintFile(m.Out, m.Files.Audit); err != nil {
				fmt.Fprintln(m.Out, "No log file yet.")
			}
		case 5:
			return m.writeOutput()
		case 6:
			m.writeStatement()
		default:
			fmt.Fprintln(m.Out, "Invalid choice.")
		}
	}
}

func (m *Menu) print(err error) {
	if err != nil {
		m.Log.Err(err).Msg("error printing to screen")
	}
}

func (m *Menu) process() {
	if m.processed {
		fmt.Fprintln(m.Out, "Requests already processed.")
		return
	}
	sum, err := m.Sess.ProcessFiles(m.Files.Input, m.Files.Rejects)
	if err != nil {
		m.Log.Err(err).Msg("error processing requests")
		fmt.Fprintf(m.Out, "Cannot process requests: %s\n", err)
		return
	}
	m.processed = true
	fmt.Fprintf(m.Out, "Processed: %d | Created: %d | Invalid: %d\n", sum.Processed, sum.Created, sum.Invalid)
}

func (m *Menu) writeOutput() error {
	accts := m.Sess.Accounts()
	if err := WriteAccountsFile(m.Files.Output, accts, m.Sess.Config().Decimals); err != nil {
		fmt.Fprintf(m.Out, "Cannot open output file: %s\n", m.Files.Output)
		return err
	}
	fmt.Fprintf(m.Out, "Wrote %d account(s) to %s\n", len(accts), m.Files.Output)
	return nil
}

func (m *Menu) writeStatement() {
	svc := NewService(m.Sess, nil)
	if err := writeFile(m.Files.Statement, svc.Statement); err != nil {
		m.Log.Err(err).Str("path", m.Files.Statement).Msg("error writing statement")
		fmt.Fprintf(m.Out, "Cannot write statement: %s\n", m.Files.Statement)
		return
	}
	fmt.Fprintf(m.Out, "Wrote statement to %s\n", m.Files.Statement)
}
