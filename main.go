package main

import "github.com/epeers/portfoliocalc/cmd"

// @title Portfolio Valuation API
// @version 1.0
// @description Values investor portfolios of shares, fund stakes and real estate as of any date.
// @host localhost:8080
// @BasePath /
func main() {
	cmd.Execute()
}
