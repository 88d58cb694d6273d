package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"dividend_valuation/pkg/core/ddm"
	"dividend_valuation/pkg/core/format"
)

func main() {
	mode := flag.String("mode", "calculate", "Mode: check or calculate")
	dataStr := flag.String("data", "", "JSON inputs payload")
	flag.Parse()

	if *dataStr == "" {
		fmt.Println("Error: No data provided")
		os.Exit(1)
	}

	var in ddm.Inputs
	if err := json.Unmarshal([]byte(*dataStr), &in); err != nil {
		fmt.Printf("Error unmarshaling data: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "check":
		runChecks(in)
	case "calculate":
		runCalculations(in)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
	}
}

func runChecks(in ddm.Inputs) {
	errs := ddm.Validate(in)
	if len(errs) == 0 {
		fmt.Println("Success: all input constraints hold")
		return
	}
	for field, msg := range errs {
		fmt.Printf("Error: %s: %s\n", field, msg)
	}
	os.Exit(1)
}

func runCalculations(in ddm.Inputs) {
	out := ddm.Compute(in)
	fmt.Printf("No-Growth:       %s\n", format.Price(out.PriceNoGrowth))
	fmt.Printf("Constant Growth: %s\n", format.Price(out.PriceConstantGrowth))
	fmt.Printf("Two-Stage:       %s\n", format.Price(out.PriceChangingGrowth))
}
