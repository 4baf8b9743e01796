package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	calc "github.com/rpgo/tvc-calculator/internal/calculation"
	"github.com/rpgo/tvc-calculator/internal/config"
	"github.com/rpgo/tvc-calculator/internal/domain"
)

// Prints the raw breakeven sweep, one row per starting age, for a config file
// or for widget-style percentages.
func main() {
	if len(os.Args) != 2 && len(os.Args) != 5 {
		fmt.Println("usage: debug_break_even <config-file>")
		fmt.Println("       debug_break_even <return%> <fee%> <tax-saving%> <current-age>")
		return
	}

	p := config.NewInputParser()
	var cfg *domain.Configuration
	if len(os.Args) == 2 {
		var err error
		cfg, err = p.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
	} else {
		nums := make([]float64, 4)
		for i, a := range os.Args[1:] {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				panic(fmt.Errorf("argument %d: %w", i+1, err))
			}
			nums[i] = v
		}
		params := config.ParametersFromPercent(nums[0], nums[1], nums[2], int(nums[3]))
		if err := p.ValidateParameters(params); err != nil {
			panic(err)
		}
		cfg = &domain.Configuration{Defaults: params}
	}

	res, err := calc.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println("Scenario,StartAge,Years,TVCGrowth,NonTVCGrowth,TVCFinal,NonTVCFinal,Difference")
	for _, s := range res.Scenarios {
		gt := s.Parameters.NetGrowthTVC()
		gn := s.Parameters.NetGrowthNonTVC()
		for i, age := range s.Sweep.StartAges {
			fmt.Printf("%s,%d,%d,%.6f,%.6f,%.2f,%.2f,%.2f\n", s.Name, age, s.Parameters.RetirementAge-age,
				gt, gn, s.Sweep.TVCFinal[i], s.Sweep.NonTVCFinal[i], s.Sweep.Difference[i])
		}
		fmt.Printf("# %s breakeven: ", s.Name)
		if s.Sweep.BreakevenAge == nil {
			fmt.Println("none")
		} else {
			fmt.Println(*s.Sweep.BreakevenAge)
		}
	}
}
