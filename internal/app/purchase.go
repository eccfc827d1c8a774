package app

import (
	"log"

	"github.com/justyntemme/folderlike/internal/debug"
	"github.com/justyntemme/folderlike/internal/ui"
)

// purchase is where a storefront would take over. There is no checkout, so
// the request is only recorded.
func (o *Orchestrator) purchase(id string) {
	b, ok := o.catalog.ByID(id)
	if !ok {
		log.Printf("Buy: unknown book %q", id)
		return
	}
	debug.Log(debug.APP, "buy %q by %s for %s", b.Title, b.Author, b.Price.Dollars())
	o.ui.ShowToast(b.Title+" for "+b.Price.Dollars(), ui.ToastInfo)
}
