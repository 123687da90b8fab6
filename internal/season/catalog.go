package season

import "time"

// newRegistry builds one prompt generator per season. Content lists
// are static; the shared RNG drives all randomization.
func newRegistry(rng RNG, now func() time.Time, loc *time.Location) map[ID]Generator {
	return map[ID]Generator{
		Christmas: &theme{
			name:   "Christmas",
			suffix: ", festive atmosphere",
			rng:    rng,
			scenes: []string{
				"winter snow scene",
				"cozy warm fireplace scene",
				"Christmas tree with lights",
				"decorations and lights on a house",
				"pile of Christmas presents",
				"family Christmas dinner table",
				"nativity scene",
				"Bethlehem star over a town",
				"Santa Claus meeting children",
				"Santa's workshop with elves",
				"Santa's sleigh in the night sky",
				"reindeer in a snowy field",
				"ice skating on a frozen pond",
				"children building a snowman",
				"carolers singing in the snow",
				"Christmas wreath on a door",
				"hot cocoa by the fireplace",
				"Christmas cookies on a plate",
				"snow-covered pine forest",
				"festive holiday village",
				"Christmas lights on a tree at night",
				"winter snow-covered cottage at dusk",
				"holiday market with wooden stalls and twinkling lights",
				"enchanted northern-lights over a pine forest",
				"ice castle with frosted turrets",
				"cozy kitchen baking cookies",
				"Victorian street with vintage decorations",
				"toy-train circling a decorated tree",
				"snow globe miniature village",
				"rooftop silhouette with sleigh in the sky",
				"stockings hung by the chimney",
				"gingerbread house with candy decorations",
				"Christmas village with lit windows",
				"wrapped presents under tree",
				"festive mantelpiece with garland",
				"children opening presents by tree",
				"advent calendar on wall",
				"Christmas Eve church service with candles",
				"snowman with scarf and top hat",
				"festive shop window display",
				"Christmas card scene with mailbox",
				"nutcracker dolls on display",
				"poinsettia plants and pine cones",
				"festive table centerpiece with candles",
				"snowy town square with giant tree",
				"Christmas morning sunrise scene",
				"Santa checking his list",
				"elves decorating cookies",
				"reindeer with jingle bells",
				"magical Christmas forest path",
				"winter wonderland with ice sculptures",
			},
			extras: []string{
				"snow falling softly",
				"warm glow from lanterns",
				"children playing",
				"candles and garlands",
				"cozy wool textures",
				"gold and red ornaments",
				"soft bokeh lights",
				"steam rising from mugs of hot cocoa",
				"frosted window patterns",
				"gingerbread textures and icing",
				"elves wrapping gifts",
				"gentle film grain",
				"reflections on wet cobblestone",
				"twinkling fairy lights",
				"pine and cinnamon scents visually implied",
				"ribbons and bows",
				"candy cane patterns",
				"wrapped presents with bows",
				"holly and mistletoe",
			},
			objects: []string{
				"decorated Christmas tree",
				"rocking chair",
				"toy train",
				"nutcracker doll",
				"gift-wrapped present",
				"advent calendar",
				"Christmas stocking",
				"gingerbread house",
				"candle holder",
				"snow globe",
				"toy soldier",
				"rocking horse",
				"santa hat",
				"holiday wreath",
				"brass bell",
				"wooden sled",
				"porcelain angel",
				"vintage ornament",
				"festive garland",
				"poinsettia plant",
			},
		},

		Winter: &theme{
			name: "Winter",
			rng:  rng,
			scenes: []string{
				"snow-covered mountain landscape at sunset",
				"frozen lake with ice formations",
				"cozy cabin in snowy woods",
				"winter forest with frost-covered trees",
				"snow-covered village street at twilight",
				"warm interior with window overlooking snowy landscape",
				"ice crystals on tree branches",
				"snowflakes falling in soft light",
				"frozen waterfall in winter forest",
				"cozy reading nook by frosted window",
				"winter sunrise over snowy hills",
				"footprints in fresh snow",
				"icicles hanging from cottage eaves",
				"steaming mug by window overlooking winter scene",
				"snow-dusted evergreen forest",
				"frozen river winding through landscape",
				"winter birds on snowy branches",
				"moonlight on snow-covered field",
				"warm firelight glowing through cabin windows",
				"snow-covered bridge over frozen stream",
				"winter mountain peaks in morning light",
				"cozy blankets and warm lighting indoors",
				"frost patterns on window glass",
				"snowdrifts against wooden fence",
				"winter wildlife in snowy habitat",
				"lantern light in snowy evening",
				"ski lodge exterior in mountains",
				"winter garden with snow-covered plants",
				"warm soup and bread on rustic table",
				"peaceful winter morning scene",
				"snow-laden pine tree branches",
				"ice fishing hut on frozen lake",
				"alpine village nestled in mountains",
				"frozen pond reflecting bare trees",
				"snowy pathway through woods",
				"stone cottage with smoking chimney",
				"winter bird feeder covered in snow",
				"icy stream flowing through snow banks",
				"snow-covered rooftops in village",
				"warm bakery window with frost patterns",
				"wooden fence line disappearing into snowstorm",
				"ice cave with blue frozen walls",
				"snowy owl perched on branch",
				"northern lights over winter landscape",
				"frozen harbor with boats in ice",
				"cozy library with winter view",
				"snow angels in pristine field",
				"winter barn with red doors in snow",
				"frozen fountain in town square",
				"sleepy winter town at night",
				"fireplace with crackling fire in cozy room",
				"fireplace interior with warm lighting and rustic decor",
				"wood burning in stone fireplace with cozy seating inside",
				"inside of log cabin with firewood stacked by fireplace",
				"cozy living room with fur throw and warm firelight",
				"rustic cabin interior with glowing fireplace and wooden furniture",
				"snow-covered pine trees with icicles hanging from branches",
			},
			extras: []string{
				"soft diffused lighting",
				"gentle snowfall",
				"warm golden hour glow",
				"peaceful atmosphere",
				"crystalline ice textures",
				"cozy wool and fur textures",
				"steam rising into cold air",
				"blue winter shadows",
				"pristine untouched snow",
				"warm amber interior lighting",
				"frosted details",
				"serene silence",
				"natural beauty",
				"winter magic",
				"tranquil mood",
				"soft bokeh lights",
				"sparkling ice crystals",
				"wisps of chimney smoke",
				"crunchy snow texture",
				"muted pastel sky",
				"bare tree silhouettes",
				"twinkling starlight",
				"foggy breath in cold air",
				"layers of snow texture",
				"icy blue color palette",
				"warm contrast with cold surroundings",
			},
			objects: []string{
				"wooden rocking chair",
				"sled",
				"lantern",
				"snow shovel",
				"knitted blanket",
				"steaming mug",
				"vintage skis",
				"firewood stack",
				"ice skates",
				"wool mittens",
				"brass telescope",
				"wooden bench",
				"copper kettle",
				"stone fireplace",
				"frost-covered window",
				"cabin door",
				"rustic mailbox",
				"old sleigh",
				"pine cone basket",
				"snowshoes",
			},
		},

		NewYears: &newYearsGen{
			now: now,
			loc: loc,
			theme: theme{
				name: "New Year's",
				rng:  rng,
				scenes: []string{
					// Iconic, big celebration scenes.
					"spectacular fireworks display over a city skyline at midnight",
					"rooftop party overlooking fireworks, city lights below",
					"harbor fireworks reflecting on water, shimmering trails in the night",
					"New Year's Eve countdown crowd, confetti in the air, bright stage lights",
					"ball drop style countdown moment, cheering crowd, sparkling confetti",
					"grand ballroom New Year's celebration, formal attire, chandeliers",
					"winter festival outdoors with fire pits, bundled up crowd, distant fireworks",
					// Intimate, cozy.
					"cozy living room at midnight, warm string lights, quiet celebration",
					"intimate candlelit gathering, champagne toast, soft bokeh lights",
					"midnight kiss under fireworks, silhouettes against the sky",
					"hands clinking champagne glasses, close-up, bubbles catching the light",
					"champagne bottle popping, celebratory spray, freeze-frame moment",
					"sparklers in hands, long exposure light trails, laughing faces",
					// Reflective, renewal.
					"handwritten New Year's resolutions in a journal, pen and paper, candle glow",
					"calendar page turning to January, soft morning light, hopeful atmosphere",
					"first sunrise of the year over mountains, calm, pastel sky",
					"snowy street at night, distant fireworks glow, quiet and dreamy",
					"fresh snow on New Year's morning, footprints, crisp air, early light",
					// Visual symbols.
					"gold and silver decorations, balloons, streamers, elegant table setting",
					"countdown clock face near midnight, close-up, dramatic lighting",
					"party hats and noisemakers on a table, confetti scattered, warm lighting",
					"neon reflections on wet pavement after fireworks, cinematic night scene",
					// Non-city settings.
					"beach bonfire New Year's celebration, fireworks over the ocean",
					"small town main street celebration, twinkling lights, gentle snowfall",
				},
				extras: []string{
					"gold foil confetti",
					"silver streamers",
					"glittering decorations",
					"soft bokeh lights",
					"warm string lights",
					"candlelight glow",
					"champagne bubbles",
					"sparkler light trails",
					"firework smoke haze",
					"neon reflections on wet pavement",
					"cinematic night lighting",
					"shallow depth of field",
					"lens flare",
					"rim lighting",
					"snow flurries",
					"winter breath in the air",
					"glowing city lights",
					"crowd silhouettes",
					"balloon numbers",
					"marquee sign lights",
				},
			},
		},

		Fall: &theme{
			name: "Fall",
			rng:  rng,
			scenes: []string{
				"autumn forest with golden and red leaves",
				"countryside road lined with colorful trees",
				"cozy porch with fall decorations",
				"pumpkin patch at golden hour",
				"harvest table with autumn bounty",
				"rustic barn surrounded by fall foliage",
				"maple trees in brilliant autumn colors",
				"fallen leaves covering forest path",
				"cozy sweater weather scene with hot cider",
				"farmhouse with autumn harvest display",
				"misty autumn morning in countryside",
				"apple orchard in fall colors",
				"corn maze entrance with autumn decorations",
				"crackling fire with fall ambiance",
				"autumn vineyard with grape harvest",
				"covered bridge surrounded by fall trees",
				"cozy reading scene with autumn view",
				"hayride through autumn landscape",
				"fall market with seasonal produce",
				"mountain landscape in peak autumn colors",
				"lakeside cabin with fall reflections",
				"autumn sunset over golden fields",
				"pumpkins and mums on farmhouse steps",
				"woodland path carpeted with leaves",
				"cozy interior with fall decorating",
				"harvest moon rising over autumn scene",
				"rustic fall wreath on wooden door",
				"autumn picnic in colorful park",
				"golden hour light through fall trees",
				"peaceful autumn garden scene",
			},
			extras: []string{
				"golden autumn light",
				"vibrant fall colors",
				"cozy flannel textures",
				"warm cider and spices",
				"crisp autumn air",
				"rustling leaves",
				"harvest abundance",
				"warm earth tones",
				"gentle breeze",
				"copper and amber hues",
				"woodland atmosphere",
				"natural textures",
				"cozy blankets",
				"seasonal comfort",
				"nostalgic mood",
				"soft bokeh lights",
			},
		},

		Summer: &theme{
			name: "Summer",
			rng:  rng,
			scenes: []string{
				"pristine beach with turquoise water",
				"tropical paradise with palm trees",
				"outdoor BBQ gathering with friends",
				"sunset over ocean waves",
				"pool party with colorful floats",
				"beach bonfire at twilight",
				"surfing in crystal clear waves",
				"summer road trip scenic vista",
				"lakeside dock at golden hour",
				"outdoor cafe in summer sunshine",
				"vineyard picnic on summer day",
				"sailboat on sparkling blue water",
				"summer garden in full bloom",
				"ice cream stand on sunny boardwalk",
				"hammock between palm trees",
				"outdoor music festival scene",
				"mountain hiking trail with wildflowers",
				"watermelon and refreshments at picnic",
				"beach volleyball game at sunset",
				"camping under starry summer sky",
				"kayaking on calm summer lake",
				"outdoor movie night setup",
				"farmers market on sunny morning",
				"sunflower field in golden light",
				"porch swing on summer evening",
				"lighthouse on sunny coastal day",
				"tropical fruit stand with vibrant colors",
				"outdoor yoga at sunrise",
				"summer carnival with lights",
				"fishing pier at golden hour",
			},
			extras: []string{
				"brilliant sunshine",
				"bright vibrant colors",
				"warm golden hour",
				"refreshing cool drinks",
				"gentle ocean breeze",
				"clear blue skies",
				"playful atmosphere",
				"relaxed vacation mood",
				"sparkling water",
				"tropical vibes",
				"outdoor adventure",
				"sun-kissed glow",
				"carefree energy",
				"summer warmth",
				"joyful moments",
				"soft bokeh lights",
			},
			objects: []string{
				"beach ball",
				"surfboard",
				"cooler",
				"beach umbrella",
				"hammock",
				"sunglasses",
				"flip-flops",
				"kayak",
				"beach towel",
				"watermelon slice",
				"seashells",
				"sand bucket",
				"inflatable float",
				"picnic basket",
				"camping tent",
				"guitar",
				"bicycle",
				"skateboard",
				"fishing rod",
				"beach chair",
			},
		},

		Spring: &theme{
			name: "Spring",
			rng:  rng,
			scenes: []string{
				// Close-up and macro blooms.
				"close-up of cherry blossom branch with pink petals, soft focus background",
				"macro shot of tulip unfurling, morning dew drops on petals",
				"tight shot of magnolia bud opening, delicate white petals emerging",
				"close-up of fresh green leaves unfurling from bud, backlit by sun",
				"macro view of daffodil center, yellow stamens, soft bokeh",
				"close-up of apple blossom cluster, white flowers with pink edges",
				"tight crop of wisteria blooms cascading, purple clusters in detail",
				"macro shot of dandelion seed head, soft light catching fuzz",
				"close-up of dogwood flower with four petals, spring morning light",
				"tight shot of lilac blooms, purple flowers in sharp detail",
				"macro view of peony bud about to open, pink layers visible",
				"close-up of iris petals with water droplets, deep purple hues",
				"tight shot of hyacinth spike, tiny purple flowers clustered",
				"macro of forsythia branch with bright yellow blooms",
				"close-up of crocus emerging through last snow, purple and white",
				// Gardens and landscapes.
				"cherry blossoms in full bloom over park pathway",
				"spring meadow filled with wildflowers stretching to horizon",
				"garden awakening with rows of tulips and daffodils",
				"blooming magnolia tree in front yard, petals on grass",
				"spring orchard with pink and white blossoms on trees",
				"rolling hills covered in spring wildflowers, golden hour",
				"wisteria covered pergola with hanging purple blooms",
				"spring forest floor with ferns unfurling, dappled sunlight",
				"flowering dogwood trees lining residential street",
				"farmers market stall with spring flowers and produce",
				// Activity and life.
				"butterfly on spring flower, macro detail of wings",
				"baby animals in spring pasture with new grass",
				"morning dew on spider web in garden, macro shot",
				"birds building nest in blooming tree branch",
				"spring creek with flowing water over mossy rocks",
				"picnic blanket in blooming park, basket of flowers",
				"children flying kites in park with spring blossoms",
				"outdoor spring breakfast on patio with flowers",
				"greenhouse filled with seedlings in small pots",
				"fresh spring bouquet on table, close-up of mixed flowers",
				// Rain.
				"rain shower with rainbow over green fields",
				"gentle spring rain falling on blooming flowers, water droplets on petals",
				"raindrops creating ripples in puddle reflecting spring blossoms",
				"person with umbrella walking through rain-soaked park with cherry blossoms",
				"rain falling on forest canopy, fresh green leaves glistening",
				"cozy window view of spring rain on garden, flowers outside",
				"rain clouds parting after shower, sunlight breaking through over meadow",
				"raindrop macro on tulip petal, soft focus background",
				"spring thunderstorm approaching over rolling hills with wildflowers",
				"rain-soaked wooden deck with spring plants in pots",
				"misty morning after spring rain, fog over meadow with flowers",
				"rain shower on urban street with spring tree blossoms scattered",
				"peaceful spring rain on lake surface, concentric ripples",
				"rainy day cozy interior looking out at blooming garden",
				"fresh spring leaves catching raindrops, backlit by soft light",
			},
			extras: []string{
				"soft spring light",
				"gentle spring breeze",
				"fresh green colors",
				"renewal and growth",
				"pastel flower colors",
				"morning freshness",
				"clear blue skies",
				"delicate petals",
				"nature awakening",
				"vibrant new life",
				"warm sunshine",
				"hopeful atmosphere",
				"natural beauty",
				"fresh air",
				"peaceful mood",
				"soft bokeh background",
				"shallow depth of field",
				"macro photography",
				"morning dew drops",
				"backlit translucent petals",
				"gentle rain falling",
				"water droplets",
				"misty atmosphere",
				"reflections in puddles",
				"rain-soaked surfaces",
				"glistening wetness",
				"dramatic storm clouds",
				"rainbow after rain",
				"cozy rainy day mood",
				"petrichor atmosphere",
			},
			objects: []string{
				"wicker basket",
				"garden trowel",
				"watering can",
				"bird house",
				"butterfly net",
				"flower pot",
				"kite",
				"rain boots",
				"colorful umbrella",
				"garden bench",
				"bird bath",
				"seed packets",
				"pruning shears",
				"wheelbarrow",
				"tea set on table",
				"picnic blanket",
				"flower vase",
				"garden hat",
				"swing set",
				"wind chimes",
			},
		},

		Thanksgiving: &theme{
			name: "Thanksgiving",
			rng:  rng,
			scenes: []string{
				// Close-up food shots.
				"close-up of golden roasted turkey with crispy skin, garnished with herbs",
				"tight shot of cranberry sauce in crystal bowl, glistening red berries",
				"close-up of pumpkin pie slice with whipped cream swirl",
				"overhead view of mashed potatoes with melting butter pool",
				"macro shot of green bean casserole with crispy onions on top",
				"close-up of stuffing spilling from carved turkey",
				"tight crop of sweet potato casserole with marshmallow topping",
				"detailed shot of gravy being poured over turkey and mashed potatoes",
				"close-up of warm dinner rolls in woven basket with butter",
				"overhead view of pecan pie with caramelized nuts",
				"tight shot of apple pie with lattice crust, steam rising",
				"close-up of cornbread stuffing with celery and herbs",
				"detailed view of brussels sprouts with bacon bits",
				"overhead shot of mac and cheese with golden crusty top",
				"close-up of corn on the cob with melting butter",
				// Table settings.
				"close-up of elegant Thanksgiving place setting with autumn napkins",
				"tight shot of wine glasses and candles on Thanksgiving table",
				"overhead view of full Thanksgiving table spread, all dishes visible",
				"close-up of centerpiece with mini pumpkins and fall flowers",
				"detailed shot of autumn-themed table runner with place cards",
				// Feast scenes.
				"family gathered around Thanksgiving dinner table, feast spread",
				"golden roasted turkey centerpiece on dining table with sides",
				"traditional Thanksgiving feast with all the trimmings displayed",
				"Thanksgiving table setting with autumn decorations everywhere",
				"rustic farmhouse Thanksgiving celebration with harvest theme",
				// Cooking.
				"kitchen counter with Thanksgiving meal prep in progress",
				"hands carving turkey on serving platter, steam rising",
				"family cooking together in warm kitchen, multiple dishes",
				"warm kitchen with homemade pies cooling on counter",
				"oven view of turkey roasting, golden brown",
				// Gathering moments.
				"multi-generational family giving thanks before meal",
				"family sharing gratitude around candlelit table",
				"grateful family holding hands at table for prayer",
				"children helping set Thanksgiving table",
				"cozy dining room filled with family and food",
				"warm gathering with friends and family, laughter and food",
				// Harvest decoration.
				"cornucopia overflowing with harvest bounty and gourds",
				"autumn harvest display with pumpkins and wheat sheaves",
				"autumn-themed centerpiece with candles and fall leaves",
			},
			extras: []string{
				"warm candlelight",
				"autumn colors and textures",
				"golden hour lighting",
				"family togetherness",
				"grateful expressions",
				"harvest decorations",
				"cozy atmosphere",
				"traditional recipes",
				"steaming hot dishes",
				"rustic wooden table",
				"seasonal abundance",
				"warm inviting glow",
				"festive tablecloth",
				"thankful mood",
				"home-cooked warmth",
				"soft bokeh lights",
				"shallow depth of field",
				"overhead food photography",
				"garnished beautifully",
				"rich textures and details",
			},
			objects: []string{
				"roasted turkey",
				"pumpkin pie",
				"cornucopia",
				"gravy boat",
				"wooden serving platter",
				"woven basket",
				"autumn wreath",
				"candle holder",
				"copper pot",
				"rustic pitcher",
				"harvest gourd",
				"wheat sheaf",
				"wooden bowl",
				"cast iron skillet",
				"linen napkins",
				"cider jug",
				"pie dish",
				"ceramic platter",
				"farmhouse table",
				"rocking chair",
			},
		},

		FourthJuly: &theme{
			name: "Fourth of July",
			rng:  rng,
			scenes: []string{
				// Flag-focused scenes.
				"large American flag waving proudly against blue sky",
				"row of American flags lining suburban street",
				"American flag bunting draped on front porch",
				"close-up of American flag rippling in summer breeze",
				"stars and stripes flag on flagpole at sunset",
				"vintage American flag hanging on historic building",
				"child holding American flag, patriotic pride",
				"multiple American flags at Independence Day parade",
				// Red, white and blue decorations.
				"backyard decorated with red white and blue balloons and streamers",
				"patriotic table setting with stars and stripes tablecloth",
				"red white and blue bunting on porch railings",
				"festive yard with American flag banners everywhere",
				"picnic table covered with patriotic decorations and flags",
				"neighborhood houses decorated with American flags",
				"stars and stripes themed party decorations",
				"red white and blue paper lanterns hanging",
				// Fireworks.
				"spectacular fireworks over Statue of Liberty",
				"red white and blue fireworks bursting in night sky",
				"patriotic fireworks display over American flag",
				"fireworks show with American flag in foreground",
				"starry fireworks over Independence Day celebration",
				// Parades.
				"Independence Day parade with marching band and flags",
				"Main street parade with red white and blue floats",
				"children waving American flags at parade",
				"veterans marching with American flags",
				"patriotic parade with classic cars and flags",
				// Food and celebrations.
				"BBQ grill with American flag apron and decorations",
				"red white and blue cupcakes with flag toppers",
				"patriotic themed picnic spread with flags",
				"watermelon slices arranged like American flag",
				"dessert table with stars and stripes decorations",
				// Attire and activities.
				"family wearing red white and blue clothing at celebration",
				"kids in patriotic costumes with American flags",
				"baseball game with American flags flying",
				"beach scene with American flag beach towels",
				"outdoor concert with giant American flag backdrop",
				// Summer evenings.
				"American flags reflecting on lake at sunset",
				"beach bonfire with American flags at dusk",
				"town square with fountain and American flags",
				"summer evening celebration with flags and lights",
			},
			extras: []string{
				"brilliant fireworks bursts",
				"vibrant red white and blue colors",
				"stars and stripes everywhere",
				"American flags flying proudly",
				"patriotic spirit and pride",
				"summer evening warmth",
				"festive celebration atmosphere",
				"red white and blue bunting",
				"star-spangled decorations",
				"American flag motifs",
				"patriotic color scheme",
				"freedom and independence",
				"outdoor party atmosphere",
				"sparkler trails of light",
				"starry night sky",
				"community togetherness",
				"red white and blue balloons",
				"stars and stripes patterns",
				"patriotic pride everywhere",
				"Independence Day magic",
			},
			objects: []string{
				"American flag",
				"fireworks display",
				"picnic basket",
				"red white and blue bunting",
				"sparklers",
				"BBQ grill",
				"cooler",
				"beach towel",
				"folding chair",
				"patriotic banner",
				"star decoration",
				"watermelon slice",
				"Uncle Sam hat",
				"cornhole board",
				"Frisbee",
				"paper lantern",
				"picnic table",
				"hot dog stand",
				"star-spangled balloon",
				"liberty bell decoration",
			},
		},

		Easter: &theme{
			name: "Easter",
			rng:  rng,
			scenes: []string{
				"Easter bunny with basket of colorful eggs",
				"children hunting for Easter eggs in garden",
				"colorful Easter eggs in spring grass",
				"Easter basket filled with candy and treats",
				"family Easter egg decorating activity",
				"Easter Sunday church celebration",
				"spring garden with hidden Easter eggs",
				"Easter brunch table with decorations",
				"bunny family in spring meadow",
				"painted Easter eggs in nest",
				"children in Easter Sunday outfits",
				"Easter egg hunt in blooming garden",
				"cross and flowers for resurrection Sunday",
				"Easter lily arrangements in church",
				"chocolate bunnies and Easter candy",
				"spring flowers and Easter decorations",
				"family gathering for Easter dinner",
				"pastel colored Easter celebration",
				"Easter parade with bonnets and spring attire",
				"sunrise Easter service outdoors",
				"resurrection garden with empty tomb",
				"children with Easter baskets full of eggs",
				"spring lamb in pastoral Easter scene",
				"Easter egg tree with hanging decorations",
				"Palm Sunday procession with palms",
				"Easter morning sunrise over flowers",
				"joyful Easter celebration gathering",
				"spring butterfly and Easter eggs",
				"church decorated for Easter Sunday",
				"family portrait in Easter spring setting",
			},
			extras: []string{
				"pastel spring colors",
				"blooming flowers",
				"soft spring light",
				"joyful celebration",
				"renewal and hope",
				"spring freshness",
				"colorful decorations",
				"Easter morning glow",
				"new life symbolism",
				"spring garden beauty",
				"festive atmosphere",
				"resurrection joy",
				"children's excitement",
				"spring awakening",
				"Easter sunshine",
				"soft bokeh lights",
			},
		},

		Halloween: &theme{
			name: "Halloween",
			rng:  rng,
			scenes: []string{
				"children trick-or-treating in costumes",
				"carved jack-o-lanterns glowing on porch",
				"Halloween decorated house with lights",
				"kids in creative Halloween costumes",
				"pumpkin patch with orange pumpkins",
				"haunted house with festive decorations",
				"neighborhood trick-or-treat evening",
				"witch decorations and black cats",
				"Halloween candy bowl on doorstep",
				"family carving pumpkins together",
				"spooky but friendly Halloween party",
				"autumn leaves and Halloween decorations",
				"children with trick-or-treat bags",
				"Halloween costume parade",
				"festive jack-o-lantern display",
				"decorated front porch for Halloween",
				"kids bobbing for apples",
				"Halloween themed treats and cookies",
				"friendly ghosts and pumpkin decorations",
				"costume contest celebration",
				"autumn evening with Halloween lights",
				"children showing off costumes",
				"pumpkin carving family activity",
				"haunted mansion with orange lights",
				"Halloween party with decorations",
				"trick-or-treaters at decorated door",
				"black cats and autumn pumpkins",
				"festive Halloween neighborhood scene",
				"candy corn and Halloween treats",
				"family in coordinated costumes",
			},
			extras: []string{
				"orange and purple lights",
				"autumn evening atmosphere",
				"festive spooky decorations",
				"children's excitement",
				"glowing jack-o-lanterns",
				"costume creativity",
				"trick-or-treat magic",
				"playful spookiness",
				"harvest moon glow",
				"neighborhood celebration",
				"candy filled bags",
				"autumn night sky",
				"festive fun atmosphere",
				"family friendly spooks",
				"Halloween spirit",
				"soft bokeh lights",
			},
			objects: []string{
				"carved jack-o-lantern",
				"witch's broomstick",
				"black cat",
				"candy bucket",
				"ghost decoration",
				"skeleton",
				"spider web",
				"cauldron",
				"witch hat",
				"pumpkin",
				"lantern",
				"scarecrow",
				"haunted house model",
				"potion bottle",
				"candy corn bowl",
				"cobweb decoration",
				"tombstone prop",
				"bat decoration",
				"orange string lights",
				"costume mask",
			},
		},

		Valentines: &theme{
			name: "Valentine's Day",
			rng:  rng,
			scenes: []string{
				"romantic candlelit dinner for two",
				"couple holding hands under starlight",
				"heart-shaped box of chocolates",
				"bouquet of red roses",
				"love birds perched together",
				"romantic sunset picnic",
				"couple dancing under the stars",
				"heart balloons floating in sky",
				"romantic walk through rose garden",
				"couple sharing a kiss",
				"cozy fireplace with two wine glasses",
				"romantic Parisian cafe scene",
				"couple on romantic beach sunset",
				"heart-shaped lights decoration",
				"romantic gondola ride in Venice",
				"couple embracing in falling rose petals",
				"romantic rooftop dinner with city lights",
				"lovebirds in heart-shaped nest",
				"couple ice skating hand in hand",
				"romantic cabin getaway with snow",
				"heart-shaped cookies and cupcakes",
				"couple stargazing on blanket",
				"romantic flower shop window display",
				"couple sharing umbrella in gentle rain",
				"heart confetti celebration",
			},
			extras: []string{
				"red and pink color palette",
				"heart motifs everywhere",
				"romantic lighting",
				"soft bokeh lights background",
				"dreamy atmosphere",
				"love is in the air",
				"romantic mood",
				"tender moment",
				"heartfelt emotion",
				"intimate setting",
				"valentine's day celebration",
				"rose petals scattered",
				"cupid's arrows",
				"sweet romance",
				"loving embrace",
				"soft bokeh lights",
			},
			objects: []string{
				"bouquet of red roses",
				"heart-shaped box of chocolates",
				"champagne bottle",
				"love letter",
				"romantic candle",
				"teddy bear",
				"heart-shaped pillow",
				"red wine glasses",
				"jewelry box",
				"valentine card",
				"silk ribbon",
				"rose petals",
				"heart balloons",
				"photo frame",
				"gift box with bow",
				"perfume bottle",
				"couples' coffee mugs",
				"string of lights",
				"velvet cushion",
				"romantic book",
			},
		},
	}
}
