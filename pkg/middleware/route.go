package middleware

import "context"

// UnmatchedRoute rotula requisições que não chegaram a nenhuma rota registrada
const UnmatchedRoute = "unmatched"

const contextKeyRoute contextKey = "route"

type routeHolder struct {
	route string
}

// withRouteHolder reserva no contexto o espaço onde o router grava o template
func withRouteHolder(ctx context.Context) (context.Context, *routeHolder) {
	holder := &routeHolder{route: UnmatchedRoute}
	return context.WithValue(ctx, contextKeyRoute, holder), holder
}

// SetRoute grava o template da rota atendida, ex. /v1/datasets/:name
func SetRoute(ctx context.Context, route string) {
	if holder, ok := ctx.Value(contextKeyRoute).(*routeHolder); ok {
		holder.route = route
	}
}
