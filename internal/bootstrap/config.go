// Package bootstrap builds the lookup engine from command line configuration.
package bootstrap

import (
	"time"
)

// Config is shared by the lookup binaries as a go-flags group.
type Config struct {
	BlockstreamURL    string        `long:"blockstream-url" env:"HODLSCOPE_BLOCKSTREAM_URL" description:"Esplora API on blockstream.info" default:"https://blockstream.info/api"`
	MempoolURL        string        `long:"mempool-url" env:"HODLSCOPE_MEMPOOL_URL" description:"Esplora API on mempool.space" default:"https://mempool.space/api"`
	BlockchairURL     string        `long:"blockchair-url" env:"HODLSCOPE_BLOCKCHAIR_URL" description:"Blockchair bitcoin API" default:"https://api.blockchair.com/bitcoin"`
	BlockchainInfoURL string        `long:"blockchaininfo-url" env:"HODLSCOPE_BLOCKCHAININFO_URL" description:"blockchain.info API" default:"https://blockchain.info"`
	ProviderRPS       int           `long:"provider-rps" env:"HODLSCOPE_PROVIDER_RPS" description:"max requests per second per provider, 0 disables limiting" default:"5"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"HODLSCOPE_HTTP_TIMEOUT" description:"hard cap for any upstream HTTP request" default:"30s"`

	BtcdRPCURL      string `long:"btcd-rpc-url" env:"HODLSCOPE_BTCD_RPC_URL" description:"address-indexed btcd RPC URL, empty disables the node provider"`
	BtcdRPCUser     string `long:"btcd-rpc-user" env:"HODLSCOPE_BTCD_RPC_USER" description:"btcd RPC username"`
	BtcdRPCPassword string `long:"btcd-rpc-password" env:"HODLSCOPE_BTCD_RPC_PASSWORD" description:"btcd RPC password"`

	SummaryOrder   []string `long:"summary-order" env:"HODLSCOPE_SUMMARY_ORDER" env-delim:"," description:"summary providers by priority"`
	FirstSeenOrder []string `long:"first-seen-order" env:"HODLSCOPE_FIRST_SEEN_ORDER" env-delim:"," description:"direct first receive providers by priority"`
	PageOrder      []string `long:"page-order" env:"HODLSCOPE_PAGE_ORDER" env-delim:"," description:"paginating providers by priority"`
	PriceOrder     []string `long:"price-order" env:"HODLSCOPE_PRICE_ORDER" env-delim:"," description:"price providers by priority"`

	SummaryTimeout   time.Duration `long:"summary-timeout" env:"HODLSCOPE_SUMMARY_TIMEOUT" description:"per provider summary timeout" default:"12s"`
	FirstSeenTimeout time.Duration `long:"first-seen-timeout" env:"HODLSCOPE_FIRST_SEEN_TIMEOUT" description:"per provider first receive timeout" default:"10s"`
	FirstPageTimeout time.Duration `long:"first-page-timeout" env:"HODLSCOPE_FIRST_PAGE_TIMEOUT" description:"per provider first page timeout" default:"10s"`
	NextPageTimeout  time.Duration `long:"next-page-timeout" env:"HODLSCOPE_NEXT_PAGE_TIMEOUT" description:"per page timeout while walking history" default:"8s"`
	PriceTimeout     time.Duration `long:"price-timeout" env:"HODLSCOPE_PRICE_TIMEOUT" description:"per provider price timeout" default:"5s"`
	PageBudget       int           `long:"page-budget" env:"HODLSCOPE_PAGE_BUDGET" description:"older pages fetched per history walk" default:"10"`
	FallbackPrice    string        `long:"fallback-price" env:"HODLSCOPE_FALLBACK_PRICE" description:"USD price used when no price provider answers" default:"84712"`
}
