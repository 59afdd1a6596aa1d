// Package youtube is a minimal YouTube client covering what sermon
// harvesting needs: resolving channels, listing their recent uploads
// and downloading caption tracks. It talks to the public uploads feed
// and the innertube player endpoint rather than the quota'd Data API.
package youtube
