package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const cliCSV = `Entity,Parent,Region,Currency,GDP,Population,Area,Density,Ratio
AFGHANISTAN,AFGHANISTAN,Asia,Afghani,2000,40,250,160,0.4
FRANCE,FRANCE,Europe,Euro,45000,68,210,320,0.6
GERMANY,GERMANY,Europe,Euro,50000,83,140,600,0.8
ARUBA,NETHERLANDS,Americas,Florin,,0.1,0.07,1500,
NETHERLANDS,NETHERLANDS,Europe,Euro,55000,18,16,1100,1.5
WORLD,WORLD,World,Dollar,17000,8000,57000,140,0.5
`

// resetFlags clears values and Changed state left behind by a previous run.
func resetFlags(c *cobra.Command) {
	reset := func(fl *pflag.Flag) {
		if sv, ok := fl.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = fl.Value.Set(fl.DefValue)
		}
		fl.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCmd is a helper to execute the root command with args and capture stdout.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := tryCmd(args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

func tryCmd(args ...string) (string, error) {
	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// setupHome isolates config under a temp HOME and writes the fixture dataset.
func setupHome(t *testing.T) (home, csvPath string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	csvPath = filepath.Join(home, "gdp.csv")
	if err := os.WriteFile(csvPath, []byte(cliCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return home, csvPath
}

func assertPNGFile(t *testing.T, path string) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatalf("%s is not a PNG", path)
	}
}

func TestCLI_Profile(t *testing.T) {
	_, csv := setupHome(t)
	out := runCmd(t, "--dataset", csv, "profile", "ARUBA")
	for _, want := range []string{"ARUBA", "Territory - NETHERLANDS", "Americas", "Florin", "nan"} {
		if !strings.Contains(out, want) {
			t.Fatalf("profile output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_InvalidSelectionPrintsNoData(t *testing.T) {
	_, csv := setupHome(t)
	for _, args := range [][]string{
		{"profile", "NOWHERE"},
		{"compare", "--stat", "Happiness"},
		{"histogram", "--stat", "Happiness"},
		{"boxplot", "--stat", "Happiness"},
		{"scatter", "--x", "Happiness"},
	} {
		out, err := tryCmd(append([]string{"--dataset", csv}, args...)...)
		if err != nil {
			t.Fatalf("%v: expected a no-data notice, got error %v", args, err)
		}
		if !strings.Contains(out, "(no data)") || !strings.Contains(out, "invalid selection") {
			t.Fatalf("%v: output:\n%s", args, out)
		}
	}
}

func TestCLI_CompareJSONAndChart(t *testing.T) {
	home, csv := setupHome(t)
	out := runCmd(t, "--dataset", csv, "compare", "--json", "--country", "FRANCE", "--country", "NETHERLANDS", "--country", "ARUBA")
	var bc struct {
		Bars []struct {
			Label string `json:"label"`
		} `json:"bars"`
	}
	if err := json.Unmarshal([]byte(out), &bc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	got := []string{}
	for _, b := range bc.Bars {
		got = append(got, b.Label)
	}
	if strings.Join(got, ",") != "NETHERLANDS,FRANCE,ARUBA" {
		t.Fatalf("order = %v", got)
	}

	// default selection applies when --country is omitted
	out = runCmd(t, "--dataset", csv, "compare")
	if !strings.Contains(out, "AFGHANISTAN") || strings.Contains(out, "FRANCE") {
		t.Fatalf("default compare output:\n%s", out)
	}

	png := filepath.Join(home, "charts", "compare.png")
	runCmd(t, "--dataset", csv, "compare", "--country", "FRANCE", "--out", png)
	assertPNGFile(t, png)
}

func TestCLI_Distributions(t *testing.T) {
	home, csv := setupHome(t)
	out := runCmd(t, "--dataset", csv, "histogram", "--stat", "Population", "--json")
	if !strings.Contains(out, `"bins"`) {
		t.Fatalf("histogram json:\n%s", out)
	}
	out = runCmd(t, "--dataset", csv, "boxplot", "--stat", "Real GDP per Capita")
	if !strings.Contains(out, "Europe") || !strings.Contains(out, "World") {
		t.Fatalf("GDP boxplot keeps WORLD:\n%s", out)
	}
	out = runCmd(t, "--dataset", csv, "boxplot", "--stat", "Population")
	if strings.Contains(out, "World") {
		t.Fatalf("non-GDP boxplot must drop WORLD:\n%s", out)
	}
	png := filepath.Join(home, "hist.png")
	runCmd(t, "--dataset", csv, "histogram", "--out", png)
	assertPNGFile(t, png)
}

func TestCLI_ScatterFit(t *testing.T) {
	home, csv := setupHome(t)
	out := runCmd(t, "--dataset", csv, "scatter", "--fit")
	if !strings.Contains(out, "Linear fit: y =") {
		t.Fatalf("scatter output:\n%s", out)
	}
	png := filepath.Join(home, "scatter.png")
	runCmd(t, "--dataset", csv, "scatter", "--x", "Population", "--y", "Geographic Area (sq mi)", "--out", png)
	assertPNGFile(t, png)
}

func TestCLI_Currency(t *testing.T) {
	home, csv := setupHome(t)
	out := runCmd(t, "--dataset", csv, "currency", "list")
	for _, want := range []string{"Afghani", "Dollar", "Euro", "Florin"} {
		if !strings.Contains(out, want) {
			t.Fatalf("currency list missing %q:\n%s", want, out)
		}
	}
	out = runCmd(t, "--dataset", csv, "currency", "query", "Euro")
	if !strings.Contains(out, "GERMANY") || strings.Contains(out, "ARUBA") {
		t.Fatalf("currency query:\n%s", out)
	}
	out = runCmd(t, "--dataset", csv, "currency", "compare", "Euro", "Florin", "--json")
	if !strings.Contains(out, `"meanGDP": null`) {
		t.Fatalf("Florin mean GDP should be null:\n%s", out)
	}
	png := filepath.Join(home, "currency.png")
	runCmd(t, "--dataset", csv, "currency", "compare", "--out", png)
	assertPNGFile(t, png)
}

func TestCLI_SummaryToFile(t *testing.T) {
	home, csv := setupHome(t)
	path := filepath.Join(home, "summary.md")
	runCmd(t, "--dataset", csv, "summary", "--group-by", "Region", "--correlations", "-o", path)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	for _, want := range []string{"[DATASET SUMMARY]", "[GROUP-BY SUMMARY]", "[CORRELATIONS]"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("summary missing %s", want)
		}
	}
}

func TestCLI_ListAndConfig(t *testing.T) {
	_, csv := setupHome(t)
	out := runCmd(t, "--dataset", csv, "list", "--countries", "--region", "europe")
	if !strings.Contains(out, "NETHERLANDS") || strings.Contains(out, "AFGHANISTAN") {
		t.Fatalf("list output:\n%s", out)
	}
	if _, err := tryCmd("list"); err == nil {
		t.Fatalf("expected error when neither --countries nor --statistics is set")
	}

	runCmd(t, "config", "set", "dataset_url", csv)
	runCmd(t, "config", "set", "chart_width_in", "8")
	out = runCmd(t, "config", "show")
	if !strings.Contains(out, "dataset_url: "+csv) || !strings.Contains(out, "chart_width_in: 8") {
		t.Fatalf("config show:\n%s", out)
	}
	// the saved dataset is used without --dataset
	out = runCmd(t, "profile", "FRANCE")
	if !strings.Contains(out, "Euro") {
		t.Fatalf("profile via saved config:\n%s", out)
	}
	if _, err := tryCmd("config", "set", "http_timeout_sec", "soon"); err == nil {
		t.Fatalf("expected error for non-integer timeout")
	}
}
