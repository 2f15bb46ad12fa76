package moneykeeper

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// The flat-file ledger format is line oriented: a "[Account:<name>]" header
// opens an account section, and every following non-empty line is one
// transaction:
//
//	<id>,<amount>,<type>,<category>,<year month day>,<currency>,<description>,<tags>
//
// where <type> is 0 for income and 1 for expense, and <tags> is "-" or a
// ";"-joined list. A blank currency means the reference currency.

const accountHeaderPrefix = "[Account:"

// wire codes for the transaction type.
const (
	wireIncome  = 0
	wireExpense = 1
)

const noTags = "-"

// EncodeLedger writes the ledger in the flat-file format, one section per
// account. The active account comes first so the selection survives a
// round trip, the others follow in lexical name order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	active := l.Active()
	if err := encodeAccount(w, active); err != nil {
		return err
	}
	for a := range l.Accounts() {
		if a == active {
			continue
		}
		if err := encodeAccount(w, a); err != nil {
			return err
		}
	}
	return nil
}

func encodeAccount(w io.Writer, a *Account) error {
	if _, err := fmt.Fprintf(w, "%s%s]\n", accountHeaderPrefix, a.Name()); err != nil {
		return fmt.Errorf("could not write account header %q: %w", a.Name(), err)
	}
	for _, t := range a.Transactions() {
		if _, err := fmt.Fprintln(w, encodeTransaction(t)); err != nil {
			return fmt.Errorf("could not write transaction %d: %w", t.ID(), err)
		}
	}
	return nil
}

func encodeTransaction(t Transaction) string {
	code := wireIncome
	if t.Type() == Expense {
		code = wireExpense
	}
	tags := noTags
	if ts := t.Tags(); len(ts) > 0 {
		tags = strings.Join(ts, ";")
	}
	day := t.When()
	return fmt.Sprintf("%d,%s,%d,%s,%d %d %d,%s,%s,%s",
		t.ID(),
		strconv.FormatFloat(t.Amount(), 'f', -1, 64),
		code,
		t.Category(),
		day.Year(), day.Month(), day.Day(),
		t.Currency(),
		t.Description(),
		tags,
	)
}

// DecodeLedger reads a ledger from the flat-file format.
//
// The decoder is tolerant: a malformed record is logged and skipped, and
// the load continues. Decoding never aborts on a single bad line; only a
// read failure is an error. After the full read the id sequence is seeded
// from the highest id observed, and the default account is restored.
//
// Balances come out as running signed-amount totals; callers holding a rate
// table should follow up with RecalculateAll.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := &Ledger{
		accounts:     make(map[string]*Account),
		baseCurrency: ReferenceCurrency,
		rates:        NewRates(),
		seq:          NewIDSequence(),
	}

	var current *Account
	seen := make(map[int]struct{})
	highWater := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, accountHeaderPrefix) {
			name, ok := strings.CutSuffix(strings.TrimPrefix(line, accountHeaderPrefix), "]")
			if !ok || strings.TrimSpace(name) == "" {
				log.Printf("skipping malformed account header: %q", line)
				continue
			}
			a, ok := l.accounts[name]
			if !ok {
				var err error
				a, err = NewAccount(name)
				if err != nil {
					log.Printf("skipping malformed account header: %q (%v)", line, err)
					continue
				}
				l.accounts[name] = a
			}
			// The first section of the file is the active account.
			if l.active == "" {
				l.active = name
			}
			current = a
			continue
		}

		if current == nil {
			log.Printf("skipping transaction outside any account section: %q", line)
			continue
		}

		t, err := decodeTransaction(line)
		if err != nil {
			log.Printf("skipping malformed transaction: %v (line: %q)", err, line)
			continue
		}
		if _, dup := seen[t.id]; dup {
			log.Printf("skipping transaction with duplicate id %d (line: %q)", t.id, line)
			continue
		}
		if err := current.AddTransaction(t); err != nil {
			log.Printf("skipping transaction: %v (line: %q)", err, line)
			continue
		}
		seen[t.id] = struct{}{}
		if t.id > highWater {
			highWater = t.id
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}

	l.seq.Seed(highWater)
	l.ensureDefaultAccount()
	return l, nil
}

// decodeTransaction parses a single record line. It fills the transaction
// directly, bypassing the id sequence: the persisted id is authoritative
// here, and the validated constructor remains the only other way in.
func decodeTransaction(line string) (Transaction, error) {
	fields := strings.SplitN(line, ",", 8)
	if len(fields) < 6 {
		return Transaction{}, fmt.Errorf("want at least 6 fields, got %d", len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || id <= 0 {
		return Transaction{}, fmt.Errorf("invalid id %q", fields[0])
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || amount <= 0 {
		return Transaction{}, fmt.Errorf("invalid amount %q", fields[1])
	}
	var kind Type
	switch strings.TrimSpace(fields[2]) {
	case strconv.Itoa(wireIncome):
		kind = Income
	case strconv.Itoa(wireExpense):
		kind = Expense
	default:
		return Transaction{}, fmt.Errorf("invalid type code %q", fields[2])
	}
	category := strings.TrimSpace(fields[3])
	if category == "" {
		return Transaction{}, fmt.Errorf("empty category")
	}
	day, err := decodeDate(fields[4])
	if err != nil {
		return Transaction{}, err
	}
	currency := strings.TrimSpace(fields[5])
	if currency == "" {
		currency = ReferenceCurrency
	}
	description := DefaultDescription
	if len(fields) > 6 && strings.TrimSpace(fields[6]) != "" {
		description = strings.TrimSpace(fields[6])
	}

	t := Transaction{
		id:          id,
		amount:      amount,
		currency:    currency,
		kind:        kind,
		category:    category,
		date:        day,
		description: description,
	}
	if len(fields) > 7 {
		if raw := strings.TrimSpace(fields[7]); raw != "" && raw != noTags {
			for _, tag := range strings.Split(raw, ";") {
				if err := t.AddTag(tag); err != nil {
					log.Printf("dropping tag %q of transaction %d: %v", tag, id, err)
				}
			}
		}
	}
	return t, nil
}

// decodeDate parses the "<year> <month> <day>" wire form of a date.
func decodeDate(s string) (Date, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q", s)
		}
		nums[i] = n
	}
	day, err := NewDate(nums[0], nums[1], nums[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return day, nil
}
