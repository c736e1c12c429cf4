package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/homelend/mortgage-engine/internal/errors"
)

// rawConfig mirrors the YAML layout; range-keyed tables arrive as plain maps
// and are parsed into ordered tiers by buildSnapshot.
type rawConfig struct {
	Version     string
	ClosingFees []rawFee

	Programs struct {
		Conventional struct {
			PMIAnnualRate map[string]float64
		}
		FHA struct {
			UpfrontPercent     float64
			StandardLimit      float64
			HighCostLimit      float64
			ShortTermMaxMonths int
			Annual             struct {
				LongStandard     map[string]float64
				LongHighBalance  map[string]float64
				ShortStandard    map[string]float64
				ShortHighBalance map[string]float64
			}
		}
		VA struct {
			FundingFee struct {
				Active struct {
					First      map[string]float64
					Subsequent map[string]float64
				}
				Reserves struct {
					First      map[string]float64
					Subsequent map[string]float64
				}
			}
		}
		USDA struct {
			UpfrontPercent float64
			AnnualPercent  float64
		}
	}

	Title struct {
		OwnerRate              map[string]float64
		LenderSimultaneousRate map[string]float64
		WaiverMultiplier       float64
		SimultaneousFee        float64
	}

	SellerCaps struct {
		ConventionalOwnerOccupied     map[string]float64
		ConventionalInvestmentPercent float64
		FHAPercent                    float64
		USDAPercent                   float64
		VAPercent                     float64
	}

	LenderCreditCapPercent float64

	MaxLTV struct {
		Conventional ProgramMaxLTV
		FHA          ProgramMaxLTV
		VA           ProgramMaxLTV
		USDA         ProgramMaxLTV
	}

	Prepaids PrepaidTables
}

type rawFee struct {
	Name        string
	Kind        string
	Base        string
	Value       float64
	Description string
}

// LoadSnapshot reads, parses, and fully validates a snapshot from a YAML
// file. The returned snapshot is safe to publish; any problem surfaces as a
// ConfigurationError and nothing partial escapes.
func LoadSnapshot(path string) (*Snapshot, error) {
	// Range keys like "80.01-85.00" contain dots, so the default viper key
	// delimiter would split them; use a delimiter that cannot collide.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapConfiguration("snapshot", "error reading configuration file", err)
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, errors.WrapConfiguration("snapshot", "unable to decode configuration into struct", err)
	}

	return buildSnapshot(&raw)
}

func buildSnapshot(raw *rawConfig) (*Snapshot, error) {
	snap := &Snapshot{
		Version:  raw.Version,
		LoadedAt: time.Now().UTC(),

		LenderCreditCapPercent: raw.LenderCreditCapPercent,
		Prepaids:               raw.Prepaids,
	}

	snap.ClosingFees = make([]FeeDefinition, 0, len(raw.ClosingFees))
	for _, fee := range raw.ClosingFees {
		snap.ClosingFees = append(snap.ClosingFees, FeeDefinition{
			Name:        fee.Name,
			Kind:        FeeKind(fee.Kind),
			Base:        CalculationBase(fee.Base),
			Value:       fee.Value,
			Description: fee.Description,
		})
	}

	tables := []struct {
		name   string
		ranges map[string]float64
		dest   *RateTable
	}{
		{"conventional.pmiAnnualRate", raw.Programs.Conventional.PMIAnnualRate, &snap.Conventional.PMIAnnualRate},
		{"fha.annual.longStandard", raw.Programs.FHA.Annual.LongStandard, &snap.FHA.AnnualLongStandard},
		{"fha.annual.longHighBalance", raw.Programs.FHA.Annual.LongHighBalance, &snap.FHA.AnnualLongHighBalance},
		{"fha.annual.shortStandard", raw.Programs.FHA.Annual.ShortStandard, &snap.FHA.AnnualShortStandard},
		{"fha.annual.shortHighBalance", raw.Programs.FHA.Annual.ShortHighBalance, &snap.FHA.AnnualShortHighBalance},
		{"va.fundingFee.active.first", raw.Programs.VA.FundingFee.Active.First, &snap.VA.ActiveFirst},
		{"va.fundingFee.active.subsequent", raw.Programs.VA.FundingFee.Active.Subsequent, &snap.VA.ActiveSubsequent},
		{"va.fundingFee.reserves.first", raw.Programs.VA.FundingFee.Reserves.First, &snap.VA.ReservesFirst},
		{"va.fundingFee.reserves.subsequent", raw.Programs.VA.FundingFee.Reserves.Subsequent, &snap.VA.ReservesSubsequent},
		{"title.ownerRate", raw.Title.OwnerRate, &snap.Title.OwnerRate},
		{"title.lenderSimultaneousRate", raw.Title.LenderSimultaneousRate, &snap.Title.LenderSimultaneousRate},
		{"sellerCaps.conventionalOwnerOccupied", raw.SellerCaps.ConventionalOwnerOccupied, &snap.SellerCaps.ConventionalOwnerOccupied},
	}
	for _, t := range tables {
		parsed, err := ParseRateTable(t.name, t.ranges)
		if err != nil {
			return nil, err
		}
		*t.dest = parsed
	}

	snap.FHA.UpfrontPercent = raw.Programs.FHA.UpfrontPercent
	snap.FHA.StandardLimit = raw.Programs.FHA.StandardLimit
	snap.FHA.HighCostLimit = raw.Programs.FHA.HighCostLimit
	snap.FHA.ShortTermMaxMonths = raw.Programs.FHA.ShortTermMaxMonths

	snap.USDA.UpfrontPercent = raw.Programs.USDA.UpfrontPercent
	snap.USDA.AnnualPercent = raw.Programs.USDA.AnnualPercent

	snap.Title.WaiverMultiplier = raw.Title.WaiverMultiplier
	snap.Title.SimultaneousFee = raw.Title.SimultaneousFee

	snap.SellerCaps.ConventionalInvestmentPercent = raw.SellerCaps.ConventionalInvestmentPercent
	snap.SellerCaps.FHAPercent = raw.SellerCaps.FHAPercent
	snap.SellerCaps.USDAPercent = raw.SellerCaps.USDAPercent
	snap.SellerCaps.VAPercent = raw.SellerCaps.VAPercent

	snap.MaxLTV.Conventional = raw.MaxLTV.Conventional
	snap.MaxLTV.FHA = raw.MaxLTV.FHA
	snap.MaxLTV.VA = raw.MaxLTV.VA
	snap.MaxLTV.USDA = raw.MaxLTV.USDA

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}
