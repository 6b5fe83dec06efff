package config

// EnvPrefix is passed to envconfig; variable names carry the STOREFRONT_
// prefix in their tags instead.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvCatalogSourceURL  = "STOREFRONT_CATALOG_SOURCE_URL"
	EnvCatalogFetchLimit = "STOREFRONT_CATALOG_FETCH_LIMIT"
)
