package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"quickdeliver/config"
	"quickdeliver/db"
	"quickdeliver/deliveries/models"
	"quickdeliver/deliveries/seed"
)

func main() {
	var (
		skipMerchants = flag.Bool("skip-merchants", false, "do not seed merchants and products")
		skipRatings   = flag.Bool("skip-ratings", false, "do not seed sample ratings")
	)
	flag.Parse()

	cfg := config.LoadConfig()
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := models.EnsureSchema(gdb); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	summary, err := seed.Run(gdb, seed.Config{
		Merchants: !*skipMerchants,
		Ratings:   !*skipRatings,
	})
	if err != nil {
		log.Fatalf("failed to seed sample data: %v", err)
	}

	printSummary(summary)
}

func printSummary(summary *seed.Summary) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("Entidade", "Criados")

	rows := [][]string{
		{"Clientes", strconv.Itoa(summary.Customers)},
		{"Entregadores", strconv.Itoa(summary.Couriers)},
		{"Pedidos", strconv.Itoa(summary.Orders)},
		{"Lojistas", strconv.Itoa(summary.Merchants)},
		{"Produtos", strconv.Itoa(summary.Products)},
		{"Rastreamentos", strconv.Itoa(summary.Trackings)},
		{"Avaliações", strconv.Itoa(summary.Ratings)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			log.Fatalf("failed to build summary table: %v", err)
		}
	}

	if err := table.Render(); err != nil {
		log.Fatalf("failed to render summary table: %v", err)
	}
}
