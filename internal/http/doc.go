// Package http provides optional HTTP adapters for the localization admin API.
//
// Routes mount under /admin/api:
//   - Locales: /locales
//   - Records: /records, /records/{id}, /records/{id}/translations,
//     /records/{id}/completeness, /records/{id}/translate
//   - Paths: /paths, /paths/alternates
//
// Host applications can register handlers on their own mux/router as needed.
package http
