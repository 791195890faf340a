package dto

import "github.com/shopspring/decimal"

// EstadoPedidoStat aggregates the current month's orders for one status.
type EstadoPedidoStat struct {
	Status   string          `json:"status"`
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

type DashboardStatsResponse struct {
	Clientes         int64              `json:"clientes"`
	FacturasAbiertas int64              `json:"facturas_abiertas"`
	DocsPorVencer    int                `json:"docs_por_vencer"`
	DocsVencidos     int                `json:"docs_vencidos"`
	Promociones      int64              `json:"promociones"`
	PedidosMes       []EstadoPedidoStat `json:"pedidos_mes"`
}

// ClienteSinPedidos is a confirmed client with no orders registered.
type ClienteSinPedidos struct {
	CoCli   string `json:"co_cli"`
	CliDes  string `json:"cli_des"`
	Zona    string `json:"zona"`
	Telefno string `json:"telefonos"`
}

// ClienteSinVentas is a client whose last invoice is older than three months.
type ClienteSinVentas struct {
	CoCli         string          `json:"co_cli"`
	CliDes        string          `json:"cli_des"`
	UltimaVenta   string          `json:"ultima_venta"`
	PromedioVenta decimal.Decimal `json:"promedio_venta"`
}
