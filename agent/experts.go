package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/stash"
	"github.com/etnz/stash/date"
	"github.com/etnz/stash/docs"
	"github.com/etnz/stash/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user keeps the tax-lot ledger of a single asset and wants to understand
			their lots, their capital gains and what to report on their tax return.
			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Answer in markdown.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewTaxAdvisor returns an expert of the FIFO method and of IRS Form 8949, it has no access to the ledger.
func NewTaxAdvisor() *Expert {
	return &Expert{
		Name: "TaxAdvisor",
		Description: `This is the tax advisor. It knows how the ledger computes lots, cost basis,
		fees and capital gains, and how they are reported on IRS Form 8949.
		Ask the TaxAdvisor to explain a figure or a rule.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: instruction(`
			You are a tax advisor, expert in the FIFO cost basis method and in IRS Form 8949.
			The tool the user runs documents its rules as follows, they take precedence over
			general knowledge when they differ:

			` + must(docs.GetTopic("*"))),
		},
	}
}

// NewAccountant returns an expert with read access to s.
func NewAccountant(s *stash.Stash) *Expert {
	lib := accountantFunctions(s)
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. It reads the user's ledger of ` + s.Asset + ` and
		computes the state of each lot after every transaction, the open lots and the Form 8949 entries.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
				You are an accountant in charge of the user's ledger.
				You know how to use the Tools to extract relevant information about it:
				  - the state of the ledger after each transaction, with capital gains
				  - the lots still open
				  - the entries of the Form 8949 and their totals
			`),
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// accountantFunctions returns the tools over s.
func accountantFunctions(s *stash.Stash) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "States",
				Description: "States returns a markdown table of every transaction of the ledger with the balance, the lots it affected and the capital gains it realized, followed by anomalies.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"from": {Type: genai.TypeString, Description: "First day to include, YYYY-MM-DD. Optional."},
						"to":   {Type: genai.TypeString, Description: "Last day to include, YYYY-MM-DD. Optional."},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown report."},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				from, err := dateArg(args, "from")
				if err != nil {
					return "", err
				}
				to, err := dateArg(args, "to")
				if err != nil {
					return "", err
				}
				return renderer.States(s, date.NewRange(from, to)), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Lots",
				Description: "Lots returns a markdown table of the lots still holding some asset, with their cost basis and holding period.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {Type: genai.TypeString, Description: "Day on which holding periods are computed, YYYY-MM-DD. Today is the default."},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown report."},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				on, err := dateArg(args, "date")
				if err != nil {
					return "", err
				}
				if on.IsZero() {
					on = date.Today()
				}
				return renderer.Lots(s, stash.Timestamp(on.Add(1).Unix()-1)), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Form8949",
				Description: "Form8949 returns the entries of the IRS Form 8949 for the given years of sale, with short and long term totals.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"years": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeInteger},
							Description: "Years of sale to include, all years when empty.",
						},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown report."},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				years, err := yearsArg(args, "years")
				if err != nil {
					return "", err
				}
				f := stash.NewForm8949(s)
				f.FilterByYear(years...)
				return renderer.Form8949(s, f, renderer.Form8949Options{}), nil
			},
		},
	}
}

// dateArg returns the optional date argument name, zero when missing.
func dateArg(args map[string]any, name string) (date.Date, error) {
	v, ok := args[name]
	if !ok || v == "" {
		return date.Date{}, nil
	}
	s, ok := v.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return date.Parse(s)
}

// yearsArg returns the optional list of years argument name.
// Numbers come as float64 from json, strings like "2016,2017" are accepted too.
func yearsArg(args map[string]any, name string) ([]int, error) {
	var years []int
	switch v := args[name].(type) {
	case nil:
	case []any:
		for _, y := range v {
			switch y := y.(type) {
			case float64:
				years = append(years, int(y))
			case string:
				n, err := strconv.Atoi(y)
				if err != nil {
					return nil, fmt.Errorf("argument %q: invalid year %q", name, y)
				}
				years = append(years, n)
			default:
				return nil, fmt.Errorf("argument %q: invalid year type %T", name, y)
			}
		}
	case string:
		for _, y := range strings.Split(v, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(y))
			if err != nil {
				return nil, fmt.Errorf("argument %q: invalid year %q", name, y)
			}
			years = append(years, n)
		}
	default:
		return nil, fmt.Errorf("argument %q is not a list of years but %T", name, v)
	}
	return years, nil
}
