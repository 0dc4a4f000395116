// Package session runs one location visit at the console: it asks for the
// location, rolls the cargo, walks the buyer through pricing and prints the
// roll summary.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/talgya/tradegoods/internal/cargo"
	"github.com/talgya/tradegoods/internal/entropy"
	"github.com/talgya/tradegoods/internal/goods"
	"github.com/talgya/tradegoods/internal/pricing"
)

// Merchant haggle skill is 30 plus a roll in this range.
const (
	merchantSkillBase = 30
	merchantSkillLow  = 3
	merchantSkillHigh = 30
)

// Console drives a visit over a line-oriented reader and writer.
type Console struct {
	Out    io.Writer
	Gen    *cargo.Generator
	Source entropy.Source

	in *bufio.Scanner
}

// Result is everything a finished visit produced.
type Result struct {
	ID            uuid.UUID
	Location      cargo.Location
	Season        goods.Season
	Visit         cargo.Visit
	MerchantSkill int
	Quotes        []pricing.Quote
}

// NewConsole returns a console reading answers from in.
func NewConsole(in io.Reader, out io.Writer, gen *cargo.Generator, src entropy.Source) *Console {
	return &Console{
		Out:    out,
		Gen:    gen,
		Source: src,
		in:     bufio.NewScanner(in),
	}
}

// Run performs one visit from first prompt to roll summary.
func (c *Console) Run() (*Result, error) {
	res := &Result{ID: uuid.New()}
	logger := slog.With("visit", res.ID.String())

	size, err := c.askCount("What is the location size: ")
	if err != nil {
		return nil, err
	}
	wealth, err := c.askCount("What is the location wealth: ")
	if err != nil {
		return nil, err
	}
	tradeCenter, err := c.askYesNo("Is this a trade center (y/n) [default: n]: ", false)
	if err != nil {
		return nil, err
	}
	season, err := c.askSeason("Please enter a season: ")
	if err != nil {
		return nil, err
	}
	res.Location = cargo.Location{Size: size, Wealth: wealth, TradeCenter: tradeCenter}
	res.Season = season

	log := entropy.NewLog()
	res.Visit.Log = log

	available, rolls, err := cargo.CheckAvailability(res.Location, c.Source, log)
	if err != nil {
		return nil, err
	}
	res.Visit.Available = available
	res.Visit.AvailabilityRolls = rolls
	logger.Debug("availability", "rolls", rolls, "threshold", res.Location.Threshold(), "available", available)

	if !available {
		fmt.Fprintln(c.Out, "No cargo available for sale.")
		PrintRolls(c.Out, log)
		return res, nil
	}

	line, err := c.ask("Enter goods produced in town, separated by commas (or press Enter to use random): ")
	if err != nil {
		return nil, err
	}
	offers, err := c.Gen.GenerateWithLog(res.Location, season, c.Source, cargo.ParseProductList(line), log)
	if err != nil {
		return nil, err
	}
	res.Visit.Offers = offers

	if len(offers) == 0 {
		fmt.Fprintln(c.Out, "No cargo available for sale.")
		PrintRolls(c.Out, log)
		return res, nil
	}

	res.MerchantSkill = merchantSkillBase + entropy.RollBetween(c.Source, merchantSkillLow, merchantSkillHigh)
	log.Record(entropy.PurposeMerchantSkill, "", res.MerchantSkill)
	fmt.Fprintf(c.Out, "Merchant haggle skill is of %d\n", res.MerchantSkill)
	PrintOffers(c.Out, offers)

	for _, o := range offers {
		if o.Special() {
			continue
		}
		q, err := c.negotiate(o)
		if err != nil {
			return nil, err
		}
		res.Quotes = append(res.Quotes, q)
	}

	PrintRolls(c.Out, log)
	logger.Info("visit complete",
		"season", season.String(),
		"trade_center", tradeCenter,
		"offers", len(offers),
		"quotes", len(res.Quotes),
	)
	return res, nil
}

// negotiate asks how much of o the buyer takes and the haggle result.
func (c *Console) negotiate(o cargo.Offer) (pricing.Quote, error) {
	buyAll, err := c.askYesNo(fmt.Sprintf("Are you buying all the cargo of %s? (y/n): ", o.Product), false)
	if err != nil {
		return pricing.Quote{}, err
	}
	d := pricing.Decision{BuyAll: buyAll}

	for !buyAll {
		units, err := c.askCount(fmt.Sprintf("How many units of %s are you buying?: ", o.Product))
		if err != nil {
			return pricing.Quote{}, err
		}
		d.PartialUnits = units
		if err := d.Validate(o); err != nil {
			fmt.Fprintf(c.Out, "Only %d units are for sale.\n", o.Size)
			continue
		}
		break
	}

	initial, err := pricing.Initial(o, d)
	if err != nil {
		return pricing.Quote{}, err
	}
	fmt.Fprintf(c.Out, "The initial price for %s is %s\n", o.Product, initial.StringFixed(1))

	fmt.Fprintln(c.Out, "What was the result of your Haggle test?")
	for _, h := range pricing.HaggleOutcomes {
		suffix := ""
		if h == pricing.HaggleNeutral {
			suffix = " [default]"
		}
		fmt.Fprintf(c.Out, "%s) %s%s\n", h.Code(), h.Label(), suffix)
	}

	var outcome pricing.HaggleOutcome
	for {
		answer, err := c.ask("Select an option (a/b/c/d/e) [default: c]: ")
		if err != nil {
			return pricing.Quote{}, err
		}
		outcome, err = pricing.ParseHaggle(answer)
		if err == nil {
			break
		}
		fmt.Fprintln(c.Out, "Please answer a, b, c, d or e.")
	}

	q, err := pricing.PriceOffer(o, d, outcome)
	if err != nil {
		return pricing.Quote{}, err
	}
	fmt.Fprintf(c.Out, "The new price for %s is %s\n", o.Product, q.FinalString())
	return q, nil
}

// ask prints prompt and returns the next trimmed line.
func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.Out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askCount asks until it gets a non-negative integer.
func (c *Console) askCount(prompt string) (int, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintln(c.Out, "Please enter a whole number of zero or more.")
	}
}

// askYesNo reads y/n; blank takes def and anything else not starting with
// y is no.
func (c *Console) askYesNo(prompt string, def bool) (bool, error) {
	answer, err := c.ask(prompt)
	if err != nil {
		return false, err
	}
	if answer == "" {
		return def, nil
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// askSeason asks until it gets a known season.
func (c *Console) askSeason(prompt string) (goods.Season, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		s, err := goods.ParseSeason(answer)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, goods.ErrInvalidInput) {
			return 0, err
		}
		fmt.Fprintln(c.Out, "Seasons are spring, summer, autumn and winter.")
	}
}
