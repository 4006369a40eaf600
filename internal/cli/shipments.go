package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/neximprove/portal/internal/models"
	"github.com/neximprove/portal/internal/portal"
)

func (a *App) printShipmentLine(s models.Shipment) {
	fmt.Fprintf(a.out, "%s - %s | %s | %s -> %s | %s\n",
		s.ID, s.Name, s.Client, s.Origin, s.Destination, s.Status)
}

// List renders the cached shipment list, newest first.
func (a *App) List(_ context.Context) {
	shipments := a.facade.State().Shipments
	if len(shipments) == 0 {
		fmt.Fprintln(a.out, "No shipments")
		return
	}
	for _, s := range shipments {
		a.printShipmentLine(s)
	}
}

// Add files a new shipment. Only the name is required; empty answers take
// the documented defaults.
func (a *App) Add(ctx context.Context) {
	ask := func(prompt string) string {
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return ""
		}
		return v
	}

	name := ask("Shipment name")
	if name == "" {
		fmt.Fprintln(a.out, "Name is required")
		return
	}

	data := portal.ShipmentData{
		Name:        name,
		Client:      ask("Client (empty for N/A)"),
		ClientRole:  models.ClientRole(ask("Client role: Importer/Exporter (empty for Importer)")),
		Origin:      ask("Origin (empty for N/A)"),
		Destination: ask("Destination (empty for N/A)"),
		Status:      models.ShipmentStatus(ask("Status: Pending/In Progress/Completed (empty for Pending)")),
		Date:        ask("Date YYYY-MM-DD (empty for today)"),
		Value:       ask("Value (empty for $0)"),
		Description: ask("Description"),
	}

	res := a.facade.AddShipment(ctx, data)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	// Full reconciliation after the optimistic cache update.
	a.facade.LoadShipments(ctx)
	fmt.Fprintf(a.out, "Created %s\n", res.Shipment.ID)
}

// Show looks a shipment up by id, case-insensitively.
func (a *App) Show(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return
	}
	s := a.facade.Service().FindShipment(ctx, args[0])
	if s == nil {
		fmt.Fprintf(a.out, "Shipment %s not found\n", args[0])
		return
	}
	a.printShipmentLine(*s)
	fmt.Fprintf(a.out, "  role: %s | date: %s | value: %s | created: %s\n",
		s.ClientRole, s.Date, s.Value, s.CreatedAt)
	if s.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", s.Description)
	}
}

// Update edits a shipment field by field; empty answers keep current values.
func (a *App) Update(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: update <id>")
		return
	}
	id := args[0]

	upd := models.ShipmentUpdate{}
	set := func(prompt string, assign func(string)) {
		v, err := GetSimpleText(a.reader, prompt+" (empty to keep)", a.out)
		if err == nil && v != "" {
			assign(v)
		}
	}
	set("Name", func(v string) { upd.Name = &v })
	set("Client", func(v string) { upd.Client = &v })
	set("Client role", func(v string) { r := models.ClientRole(v); upd.ClientRole = &r })
	set("Origin", func(v string) { upd.Origin = &v })
	set("Destination", func(v string) { upd.Destination = &v })
	set("Status", func(v string) { st := models.ShipmentStatus(v); upd.Status = &st })
	set("Date", func(v string) { upd.Date = &v })
	set("Value", func(v string) { upd.Value = &v })
	set("Description", func(v string) { upd.Description = &v })

	res := a.facade.UpdateShipment(ctx, id, upd)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	a.facade.LoadShipments(ctx)
	fmt.Fprintf(a.out, "Updated %s\n", res.Shipment.ID)
}

func (a *App) Delete(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return
	}
	res := a.facade.DeleteShipment(ctx, args[0])
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	fmt.Fprintf(a.out, "Deleted %s\n", args[0])
}

func (a *App) Stats(ctx context.Context) {
	stats := a.facade.Service().GetShipmentStats(ctx)
	fmt.Fprintf(a.out, "total: %d | pending: %d | in progress: %d | completed: %d\n",
		stats.Total, stats.Pending, stats.InProgress, stats.Completed)
}

func (a *App) Clients(ctx context.Context) {
	clients := a.facade.Service().GetClients(ctx)
	fmt.Fprintf(a.out, "Importers: %s\n", strings.Join(clients.Importers, ", "))
	fmt.Fprintf(a.out, "Exporters: %s\n", strings.Join(clients.Exporters, ", "))
}

func (a *App) Search(ctx context.Context, args []string) {
	matches := a.facade.Service().SearchShipments(ctx, strings.Join(args, " "))
	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No matches")
		return
	}
	for _, s := range matches {
		a.printShipmentLine(s)
	}
}
