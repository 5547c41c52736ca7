package amethyste

import "context"

type urlPayload struct {
	URL string `json:"url"`
}

type invertPayload struct {
	URL    string `json:"url"`
	Invert bool   `json:"invert,omitempty"`
}

type textPayload struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// pairPayload composites two images; url is the primary image and avatar
// the secondary one. type carries the style token when the endpoint takes
// one.
type pairPayload struct {
	URL    string `json:"url"`
	Avatar string `json:"avatar"`
	Type   string `json:"type,omitempty"`
}

// ThreeThousandYears puts the image on the "it's been 3000 years" meme.
func (c *Client) ThreeThousandYears(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "3000years", urlPayload{URL: imageURL})
}

// Approved stamps the image with an "approved" seal.
func (c *Client) Approved(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "approved", urlPayload{URL: imageURL})
}

func (c *Client) AFusion(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "afusion", urlPayload{URL: imageURL})
}

// BadgeParams describes the bot listing badge rendered by Badge.
type BadgeParams struct {
	Username string
	Servers  int
	Users    int
}

type badgePayload struct {
	URL     string `json:"url"`
	Text    string `json:"text"`
	Servers int    `json:"numberserver"`
	Users   int    `json:"numberusers"`
}

// Badge renders a bot badge around the avatar with the given stats.
func (c *Client) Badge(ctx context.Context, avatarURL string, params BadgeParams) ([]byte, error) {
	return c.generate(ctx, "badge", badgePayload{
		URL:     avatarURL,
		Text:    params.Username,
		Servers: params.Servers,
		Users:   params.Users,
	})
}

// Batslap puts the first image slapping the target image.
func (c *Client) Batslap(ctx context.Context, imageURL, targetImageURL string) ([]byte, error) {
	return c.generate(ctx, "batslap", pairPayload{URL: targetImageURL, Avatar: imageURL})
}

func (c *Client) Beautiful(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "beautiful", urlPayload{URL: imageURL})
}

type blurPayload struct {
	URL  string `json:"url"`
	Blur int    `json:"blur,omitempty"`
}

// Blur blurs the image. A zero amount uses the API default of 5.
func (c *Client) Blur(ctx context.Context, imageURL string, amount int) ([]byte, error) {
	return c.generate(ctx, "blur", blurPayload{URL: imageURL, Blur: amount})
}

// Blurple recolors the image in Discord blurple.
func (c *Client) Blurple(ctx context.Context, imageURL string, invert bool) ([]byte, error) {
	return c.generate(ctx, "blurple", invertPayload{URL: imageURL, Invert: invert})
}

func (c *Client) Brazzers(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "brazzers", urlPayload{URL: imageURL})
}

func (c *Client) Burn(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "burn", urlPayload{URL: imageURL})
}

func (c *Client) Challenger(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "challenger", urlPayload{URL: imageURL})
}

// Circle crops the image to a circle.
func (c *Client) Circle(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "circle", urlPayload{URL: imageURL})
}

func (c *Client) Contrast(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "contrast", urlPayload{URL: imageURL})
}

func (c *Client) Crush(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "crush", urlPayload{URL: imageURL})
}

func (c *Client) DDungeon(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "ddungeon", urlPayload{URL: imageURL})
}

func (c *Client) Deepfry(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "deepfry", urlPayload{URL: imageURL})
}

func (c *Client) Dictator(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "dictator", urlPayload{URL: imageURL})
}

type housePayload struct {
	URL   string `json:"url"`
	House string `json:"house"`
}

// DiscordHouse frames the avatar with the given Hypesquad house theme.
func (c *Client) DiscordHouse(ctx context.Context, imageURL string, house HypesquadHouse) ([]byte, error) {
	if err := house.validate(); err != nil {
		return nil, err
	}
	return c.generate(ctx, "discordhouse", housePayload{URL: imageURL, House: house.String()})
}

func (c *Client) Distort(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "distort", urlPayload{URL: imageURL})
}

func (c *Client) Dither565(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "dither565", urlPayload{URL: imageURL})
}

func (c *Client) Emboss(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "emboss", urlPayload{URL: imageURL})
}

// Facebook renders the image in a fake Facebook post with the given text.
func (c *Client) Facebook(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.generate(ctx, "facebook", textPayload{URL: imageURL, Text: text})
}

func (c *Client) Fire(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "fire", urlPayload{URL: imageURL})
}

func (c *Client) Frame(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "frame", urlPayload{URL: imageURL})
}

func (c *Client) Gay(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "gay", urlPayload{URL: imageURL})
}

func (c *Client) Glitch(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "glitch", urlPayload{URL: imageURL})
}

// Greyple recolors the image in Discord greyple.
func (c *Client) Greyple(ctx context.Context, imageURL string, invert bool) ([]byte, error) {
	return c.generate(ctx, "greyple", invertPayload{URL: imageURL, Invert: invert})
}

func (c *Client) Greyscale(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "greyscale", urlPayload{URL: imageURL})
}

func (c *Client) Instagram(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "instagram", urlPayload{URL: imageURL})
}

func (c *Client) Invert(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "invert", urlPayload{URL: imageURL})
}

func (c *Client) Jail(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "jail", urlPayload{URL: imageURL})
}

func (c *Client) LookWhatKarenHave(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "lookwhatkarenhave", urlPayload{URL: imageURL})
}

func (c *Client) Magik(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "magik", urlPayload{URL: imageURL})
}

func (c *Client) MissionPassed(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "missionpassed", urlPayload{URL: imageURL})
}

func (c *Client) Moustache(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "moustache", urlPayload{URL: imageURL})
}

type pixelizePayload struct {
	URL      string `json:"url"`
	Pixelize int    `json:"pixelize,omitempty"`
}

// Pixelize pixelates the image. A zero amount uses the API default of 5;
// the API accepts 1 through 50.
func (c *Client) Pixelize(ctx context.Context, imageURL string, amount int) ([]byte, error) {
	return c.generate(ctx, "pixelize", pixelizePayload{URL: imageURL, Pixelize: amount})
}

// PlayStationFour renders the image as a PS4 loading screen.
func (c *Client) PlayStationFour(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "ps4", urlPayload{URL: imageURL})
}

func (c *Client) Posterize(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "posterize", urlPayload{URL: imageURL})
}

// Redple recolors the image in red, blurple style.
func (c *Client) Redple(ctx context.Context, imageURL string, invert bool) ([]byte, error) {
	return c.generate(ctx, "redple", invertPayload{URL: imageURL, Invert: invert})
}

func (c *Client) Rejected(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "rejected", urlPayload{URL: imageURL})
}

// RestInPeace puts the image on a gravestone.
func (c *Client) RestInPeace(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "rip", urlPayload{URL: imageURL})
}

func (c *Client) Scary(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "scary", urlPayload{URL: imageURL})
}

func (c *Client) Sepia(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "sepia", urlPayload{URL: imageURL})
}

func (c *Client) Sharpen(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "sharpen", urlPayload{URL: imageURL})
}

func (c *Client) Sniper(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "sniper", urlPayload{URL: imageURL})
}

func (c *Client) Spin(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "spin", urlPayload{URL: imageURL})
}

// SteamCard renders the image as a Steam trading card with the given text.
func (c *Client) SteamCard(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.generate(ctx, "steamcard", textPayload{URL: imageURL, Text: text})
}

func (c *Client) Subzero(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "subzero", urlPayload{URL: imageURL})
}

type symmetryPayload struct {
	URL         string `json:"url"`
	Orientation string `json:"orientation"`
}

// Symmetry mirrors the image along the given orientation.
func (c *Client) Symmetry(ctx context.Context, imageURL string, orientation Orientation) ([]byte, error) {
	if err := orientation.validate(); err != nil {
		return nil, err
	}
	return c.generate(ctx, "symmetry", symmetryPayload{URL: imageURL, Orientation: orientation.String()})
}

func (c *Client) Thanos(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "thanos", urlPayload{URL: imageURL})
}

func (c *Client) ToBeContinued(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "tobecontinued", urlPayload{URL: imageURL})
}

// TriggeredOptions toggles the extra filters applied to the triggered gif.
type TriggeredOptions struct {
	Blur       bool `json:"blur,omitempty"`
	Greyscale  bool `json:"greyscale,omitempty"`
	Horizontal bool `json:"horizontal,omitempty"`
	Invert     bool `json:"invert,omitempty"`
	Sepia      bool `json:"sepia,omitempty"`
	Vertical   bool `json:"vertical,omitempty"`
}

type triggeredPayload struct {
	URL string `json:"url"`
	TriggeredOptions
}

// Triggered renders the shaking "triggered" gif. Unlike the other generate
// endpoints the result is a gif, not a png.
func (c *Client) Triggered(ctx context.Context, imageURL string, opts TriggeredOptions) ([]byte, error) {
	return c.generate(ctx, "triggered", triggeredPayload{URL: imageURL, TriggeredOptions: opts})
}

type trinityPayload struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Trinity puts the image on the trinity cross in the given style.
func (c *Client) Trinity(ctx context.Context, imageURL string, typ TrinityType) ([]byte, error) {
	if err := typ.validate(); err != nil {
		return nil, err
	}
	return c.generate(ctx, "trinity", trinityPayload{URL: imageURL, Type: typ.String()})
}

type twitterPayload struct {
	URL     string `json:"url"`
	Avatar1 string `json:"avatar1"`
	Avatar2 string `json:"avatar2"`
	Avatar3 string `json:"avatar3"`
	Text    string `json:"text"`
}

// Twitter renders a fake tweet: the main image as the author, three avatars
// in the reactions row and the given text as the body.
func (c *Client) Twitter(ctx context.Context, imageURL, avatar1, avatar2, avatar3, text string) ([]byte, error) {
	return c.generate(ctx, "twitter", twitterPayload{
		URL:     imageURL,
		Avatar1: avatar1,
		Avatar2: avatar2,
		Avatar3: avatar3,
		Text:    text,
	})
}

// UltimateTattoo tattoos the image onto a back.
func (c *Client) UltimateTattoo(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "utatoo", urlPayload{URL: imageURL})
}

func (c *Client) Unsharpen(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "unsharpen", urlPayload{URL: imageURL})
}

// Versus composites the two images into a head-to-head banner using the
// given palette.
func (c *Client) Versus(ctx context.Context, leftImageURL, rightImageURL string, colors VersusColors) ([]byte, error) {
	if err := colors.validate(); err != nil {
		return nil, err
	}
	return c.generate(ctx, "vs", pairPayload{URL: leftImageURL, Avatar: rightImageURL, Type: colors.String()})
}

func (c *Client) Wanted(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "wanted", urlPayload{URL: imageURL})
}

func (c *Client) Wasted(ctx context.Context, imageURL string) ([]byte, error) {
	return c.generate(ctx, "wasted", urlPayload{URL: imageURL})
}

// WhoWouldWin composites the two images into a "who would win?" panel.
func (c *Client) WhoWouldWin(ctx context.Context, leftImageURL, rightImageURL string) ([]byte, error) {
	return c.generate(ctx, "whowouldwin", pairPayload{URL: leftImageURL, Avatar: rightImageURL})
}
