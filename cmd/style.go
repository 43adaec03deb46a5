package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/brave-chain/config"
	"github.com/luca-patrignani/brave-chain/domain/evaluation"
)

type ranking struct {
	title   string
	entries []evaluation.Entry
}

func rankings(r evaluation.Result, showStars bool) []ranking {
	rs := []ranking{
		{title: "By Damage:", entries: r.ByDamage},
		{title: "By NP:", entries: r.ByNP},
	}
	if showStars {
		rs = append(rs, ranking{title: "By Stars:", entries: r.ByStars})
	}
	return rs
}

func render(w io.Writer, out config.OutputConfig, r evaluation.Result) error {
	switch out.Format {
	case config.FormatJSON:
		return renderJSON(w, r)
	case config.FormatPlain:
		_, err := io.WriteString(w, renderPlain(r, out.ShowStars))
		return err
	default:
		s, err := renderTables(r, out.ShowStars)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	}
}

func renderPlain(r evaluation.Result, showStars bool) string {
	var sb strings.Builder
	for _, rk := range rankings(r, showStars) {
		sb.WriteString(rk.title + "\n")
		for _, e := range rk.entries {
			sb.WriteString(e.String() + "\n")
		}
	}
	return sb.String()
}

func rankingTable(entries []evaluation.Entry) pterm.TableData {
	data := pterm.TableData{{"#", "Order", "Damage", "NP", "Stars"}}
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Hand.String(),
			fmt.Sprintf("%.0f", e.Stats.Damage),
			fmt.Sprintf("%.3f", e.Stats.NP),
			fmt.Sprintf("%.1f", e.Stats.Stars),
		})
	}
	return data
}

func renderTables(r evaluation.Result, showStars bool) (string, error) {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("rave ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("hain", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(banner)
	sb.WriteString(pterm.Info.Sprintfln("Hand: %s", r.Hand))
	for _, rk := range rankings(r, showStars) {
		table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(rankingTable(rk.entries)).Srender()
		if err != nil {
			return "", err
		}
		sb.WriteString(pterm.LightCyan(rk.title) + "\n")
		sb.WriteString(table + "\n")
	}
	return sb.String(), nil
}

func renderJSON(w io.Writer, r evaluation.Result) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderError(err error) string {
	return pterm.Error.Sprint(err.Error())
}
